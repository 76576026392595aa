package sim

import (
	"context"
	"math/rand"
	"testing"
)

type testMetric struct {
	observed int
	resets   int
}

func (m *testMetric) Name() string { return "test" }

func (m *testMetric) Observe(w *World, fs FrameStats) { m.observed++ }

func (m *testMetric) Value() float64 { return float64(m.observed) }

func (m *testMetric) Reset() { m.observed = 0; m.resets++ }

type testObserver struct {
	frames []FrameStats
}

func (o *testObserver) OnFrame(w *World, fs FrameStats) { o.frames = append(o.frames, fs) }

func TestRunnerRun(t *testing.T) {
	w := NewWorld(DefaultParams(), rand.New(rand.NewSource(1)))
	r := NewRunner(w)

	metric := &testMetric{}
	obs := &testObserver{}
	r.AddMetric(metric)
	r.AddObserver(obs)

	result, err := r.Run(context.Background(), 20)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Frames) != 20 {
		t.Errorf("expected 20 frames, got %d", len(result.Frames))
	}
	if metric.resets != 1 {
		t.Errorf("metric reset %d times, want 1", metric.resets)
	}
	if result.Metrics["test"] != 20 {
		t.Errorf("metric value = %f, want 20", result.Metrics["test"])
	}
	if len(obs.frames) != 20 {
		t.Errorf("observer saw %d frames, want 20", len(obs.frames))
	}
	if w.Frame() != 20 {
		t.Errorf("world frame = %d, want 20", w.Frame())
	}
}

func TestRunnerInvalidFrames(t *testing.T) {
	w := NewWorld(DefaultParams(), rand.New(rand.NewSource(1)))
	r := NewRunner(w)

	for _, frames := range []int{0, -5} {
		if _, err := r.Run(context.Background(), frames); err == nil {
			t.Errorf("frames=%d: expected error, got nil", frames)
		}
	}
}

func TestRunnerCancellation(t *testing.T) {
	w := NewWorld(DefaultParams(), rand.New(rand.NewSource(1)))
	r := NewRunner(w)
	r.AddMetric(&testMetric{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := r.Run(ctx, 100)
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result == nil {
		t.Fatal("expected partial result on cancellation")
	}
	if len(result.Frames) != 0 {
		t.Errorf("expected no completed frames, got %d", len(result.Frames))
	}
	if _, ok := result.Metrics["test"]; !ok {
		t.Error("partial result missing metrics")
	}
}
