// Package metrics provides sim.Metric implementations observed once
// per frame during headless runs.
package metrics

import "github.com/san-kum/gravitons/internal/sim"

// Population tracks the mean number of live gravitons per frame.
type Population struct {
	frames int
	total  float64
}

func NewPopulation() *Population { return &Population{} }

func (p *Population) Name() string { return "graviton_population" }

func (p *Population) Observe(w *sim.World, fs sim.FrameStats) {
	p.total += float64(fs.Active)
	p.frames++
}

func (p *Population) Value() float64 {
	if p.frames == 0 {
		return 0
	}
	return p.total / float64(p.frames)
}

func (p *Population) Reset() {
	p.frames = 0
	p.total = 0
}

// Impacts counts gravitons absorbed by particles over the whole run.
type Impacts struct {
	total int
}

func NewImpacts() *Impacts { return &Impacts{} }

func (m *Impacts) Name() string { return "impacts" }

func (m *Impacts) Observe(w *sim.World, fs sim.FrameStats) {
	m.total += fs.Impacts
}

func (m *Impacts) Value() float64 { return float64(m.total) }

func (m *Impacts) Reset() { m.total = 0 }

// Momentum tracks the mean particle speed across all particles and
// frames, a rough measure of how agitated the system is.
type Momentum struct {
	samples int
	total   float64
}

func NewMomentum() *Momentum { return &Momentum{} }

func (m *Momentum) Name() string { return "mean_speed" }

func (m *Momentum) Observe(w *sim.World, fs sim.FrameStats) {
	for _, p := range w.Particles {
		m.total += p.Speed()
		m.samples++
	}
}

func (m *Momentum) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *Momentum) Reset() {
	m.samples = 0
	m.total = 0
}

// Default returns the metric set attached to every recorded run.
func Default() []sim.Metric {
	return []sim.Metric{NewPopulation(), NewImpacts(), NewMomentum()}
}
