package sim

import "math/rand"

// World owns the entire simulation state: the fixed particle set, the
// live graviton collection, and the injected RNG. All mutation happens
// on the single control path through Step.
type World struct {
	Params    Params
	Particles []*Particle
	Gravitons []*Graviton

	rng   *rand.Rand
	frame int
}

// NewWorld creates a world with ParticleCount particles spawned inside
// the margin-inset zone and no gravitons. The RNG drives spawn
// positions, colors, and emission noise; a fixed seed reproduces the
// exact trajectory.
func NewWorld(p Params, rng *rand.Rand) *World {
	w := &World{
		Params:    p,
		Particles: make([]*Particle, 0, p.ParticleCount),
		Gravitons: make([]*Graviton, 0, p.ParticleCount*p.GravitonSpawn*p.GravitonLife),
		rng:       rng,
	}
	zone := [4]float64{
		p.SpawnMargin,
		p.SpawnMargin,
		p.Width - p.SpawnMargin,
		p.Height - p.SpawnMargin,
	}
	for i := 0; i < p.ParticleCount; i++ {
		w.Particles = append(w.Particles, NewParticle(rng, zone, p.ParticleSize, p.ColorMin, p.ColorRange))
	}
	return w
}

// Frame returns the number of completed frames.
func (w *World) Frame() int { return w.frame }

// Draw renders the current state without advancing it. Used by the
// frontends while paused.
func (w *World) Draw(r Renderer) {
	r.Clear(w.Params.Background)
	for _, p := range w.Particles {
		p.Draw(r)
	}
	for _, g := range w.Gravitons {
		g.Draw(r)
	}
}

// Step advances the world by one frame. The phase order matters:
// particles are drawn at their pre-update position, gravitons are
// emitted from post-update particle state, and expiry is checked
// before collision so an out-of-bounds graviton never lands a hit.
func (w *World) Step(r Renderer) FrameStats {
	p := w.Params
	limits := p.Limits()
	fs := FrameStats{Frame: w.frame}

	r.Clear(p.Background)

	for i, pt := range w.Particles {
		pt.Draw(r)
		pt.Update(limits, p.ForceLimit)
		for n := 0; n < p.GravitonSpawn; n++ {
			forces := Vec{
				pt.Forces[0] + (w.rng.Float64()-0.5)*p.GravitonNoise,
				pt.Forces[1] + (w.rng.Float64()-0.5)*p.GravitonNoise,
			}
			w.Gravitons = append(w.Gravitons,
				NewGraviton(i, pt.Pos, forces, pt.Color, p.GravitonSize, p.GravitonLife, p.ColorScale))
			fs.Spawned++
		}
	}

	// Single pass over the live set, building the retained list fresh.
	// Every graviton is considered exactly once per frame; the first
	// collision wins and removal happens at most once.
	retained := make([]*Graviton, 0, len(w.Gravitons))
	for _, g := range w.Gravitons {
		g.Draw(r)
		g.Update()
		g.Life--

		if g.Life <= 0 {
			fs.Expired++
			continue
		}
		if g.Pos[0] < 0 || g.Pos[0] > p.Width || g.Pos[1] < 0 || g.Pos[1] > p.Height {
			fs.Escaped++
			continue
		}

		hit := false
		for i, pt := range w.Particles {
			if i == g.Creator {
				continue
			}
			if g.Hits(pt) {
				pt.ApplyForce(Vec{
					g.Forces[0] * p.ImpactScale,
					g.Forces[1] * p.ImpactScale,
				}, limits)
				hit = true
				break
			}
		}
		if hit {
			fs.Impacts++
			continue
		}

		retained = append(retained, g)
	}
	w.Gravitons = retained

	fs.Active = len(w.Gravitons)
	w.frame++
	return fs
}
