package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravitons/internal/config"
	"github.com/san-kum/gravitons/internal/gui"
	"github.com/san-kum/gravitons/internal/metrics"
	"github.com/san-kum/gravitons/internal/sim"
	"github.com/san-kum/gravitons/internal/storage"
	"github.com/san-kum/gravitons/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	frames     int
	particles  int
	fps        int
	outPath    string
)

// main registers commands and flags and executes the root command,
// which launches the GUI when no subcommand is given. The process
// exits with status 1 on command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "gravitons",
		Short: "particle and graviton physics toy",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg.Params(), seed)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravitons", "data directory")
	addWorldFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
		cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
		cmd.Flags().IntVar(&particles, "particles", 0, "override particle count")
		cmd.Flags().IntVar(&fps, "fps", 0, "override frame rate")
	}
	addWorldFlags(rootCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run simulation in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg.Params(), seed)
			return nil
		},
	}
	addWorldFlags(guiCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live terminal visualization",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg.Params(), seed)
		},
	}
	addWorldFlags(liveCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation headless and record it",
		RunE:  runHeadless,
	}
	addWorldFlags(runCmd)
	runCmd.Flags().IntVar(&frames, "frames", 300, "frames to simulate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run statistics",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export full run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRunJSON,
	}
	exportJSONCmd.Flags().StringVar(&outPath, "out", "", "output path (default stdout)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the frame loop",
		RunE:  benchWorld,
	}
	addWorldFlags(benchCmd)
	benchCmd.Flags().IntVar(&frames, "frames", 1000, "frames to simulate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, listCmd, plotCmd, exportCmd, exportJSONCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file, and explicit flags, in
// that order of precedence (lowest first).
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("particles") {
		cfg.Particles.Count = particles
	}
	if cmd.Flags().Changed("fps") {
		cfg.FrameRate = fps
	}
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func presetLabel() string {
	if preset != "" {
		return preset
	}
	return "default"
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	params := cfg.Params()
	world := sim.NewWorld(params, rand.New(rand.NewSource(seed)))
	runner := sim.NewRunner(world)
	for _, m := range metrics.Default() {
		runner.AddMetric(m)
	}

	fmt.Printf("running %d frames...\n", frames)
	start := time.Now()

	result, err := runner.Run(context.Background(), frames)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(presetLabel(), params, seed, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", len(result.Frames))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tFRAMES\tPARTICLES\tSEED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Particles,
			run.Seed,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	stats, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("frames: %d\n\n", len(stats))

	series := []struct {
		caption string
		pick    func(fs sim.FrameStats) float64
	}{
		{"live gravitons", func(fs sim.FrameStats) float64 { return float64(fs.Active) }},
		{"impacts per frame", func(fs sim.FrameStats) float64 { return float64(fs.Impacts) }},
		{"escaped per frame", func(fs sim.FrameStats) float64 { return float64(fs.Escaped) }},
	}

	for _, s := range series {
		data := make([]float64, len(stats))
		for i, fs := range stats {
			data[i] = s.pick(fs)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportRunJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	stats, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	result := &sim.Result{Frames: stats, Metrics: meta.Metrics}
	if outPath != "" {
		return storage.ExportJSON(outPath, meta.Preset, meta.Seed, result)
	}
	return storage.ExportJSONStdout(meta.Preset, meta.Seed, result)
}

func benchWorld(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	world := sim.NewWorld(cfg.Params(), rand.New(rand.NewSource(seed)))

	start := time.Now()
	var peak int
	for i := 0; i < frames; i++ {
		fs := world.Step(sim.Headless)
		if fs.Active > peak {
			peak = fs.Active
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("frames: %d\n", frames)
	fmt.Printf("elapsed: %v\n", elapsed)
	fmt.Printf("per frame: %v\n", elapsed/time.Duration(frames))
	fmt.Printf("peak gravitons: %d\n", peak)
	return nil
}
