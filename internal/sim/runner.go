package sim

import (
	"context"
	"fmt"
)

// Runner drives a world headlessly for a fixed number of frames,
// feeding metrics and observers once per completed frame.
type Runner struct {
	world     *World
	metrics   []Metric
	observers []Observer
}

func NewRunner(w *World) *Runner {
	return &Runner{
		world:     w,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run advances the world for the given number of frames. Cancellation
// is checked at frame boundaries only; a started frame always
// completes. The partial result is returned alongside ctx.Err.
func (r *Runner) Run(ctx context.Context, frames int) (*Result, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("frames must be positive, got %d", frames)
	}

	result := &Result{
		Frames:  make([]FrameStats, 0, frames),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			r.collect(result)
			return result, ctx.Err()
		default:
		}

		fs := r.world.Step(Headless)
		result.Frames = append(result.Frames, fs)

		for _, m := range r.metrics {
			m.Observe(r.world, fs)
		}
		for _, obs := range r.observers {
			obs.OnFrame(r.world, fs)
		}
	}

	r.collect(result)
	return result, nil
}

func (r *Runner) collect(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
