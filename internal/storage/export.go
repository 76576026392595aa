package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/gravitons/internal/sim"
)

type ExportData struct {
	Preset  string             `json:"preset"`
	Seed    int64              `json:"seed"`
	Frames  int                `json:"frames"`
	Stats   []sim.FrameStats   `json:"stats"`
	Metrics map[string]float64 `json:"metrics"`
}

func ExportJSON(path string, preset string, seed int64, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeExport(file, preset, seed, result)
}

func ExportJSONStdout(preset string, seed int64, result *sim.Result) error {
	return writeExport(os.Stdout, preset, seed, result)
}

func writeExport(w io.Writer, preset string, seed int64, result *sim.Result) error {
	data := ExportData{
		Preset:  preset,
		Seed:    seed,
		Frames:  len(result.Frames),
		Stats:   result.Frames,
		Metrics: result.Metrics,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
