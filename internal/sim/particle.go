package sim

import (
	"math"
	"math/rand"
)

// Particle is a long-lived body drifting inside the arena. Forces is
// the per-frame displacement vector, not a physical force; walls are
// handled by negating force components, never by clamping position.
type Particle struct {
	Pos    Vec
	Forces Vec
	Color  Color
	Size   int
}

// NewParticle places a particle uniformly inside the spawn zone
// [x0,y0,x1,y1] with a random color and zero initial force.
func NewParticle(rng *rand.Rand, zone [4]float64, size int, colorMin, colorRange int) *Particle {
	return &Particle{
		Pos: Vec{
			zone[0] + rng.Float64()*(zone[2]-zone[0]),
			zone[1] + rng.Float64()*(zone[3]-zone[1]),
		},
		Color: Color{
			R: uint8(colorMin + rng.Intn(colorRange+1)),
			G: uint8(colorMin + rng.Intn(colorRange+1)),
			B: uint8(colorMin + rng.Intn(colorRange+1)),
		},
		Size: size,
	}
}

// ApplyForce adds an external impulse to the force vector. Per axis,
// if the position projected through both the current force and the
// impulse would leave the arena, the current force component is
// negated first, so a knock near a wall flips direction instead of
// pushing through it. Position is not touched.
func (p *Particle) ApplyForce(force, limits Vec) {
	size := float64(p.Size)
	for i := 0; i < 2; i++ {
		projected := p.Pos[i] + p.Forces[i] + force[i]
		if projected-size < 0 || projected+size > limits[i] {
			p.Forces[i] = -p.Forces[i]
		}
		p.Forces[i] += force[i]
	}
}

// Update advances the particle by one frame: clamp each force
// component to the force limit, reflect it if the projected position
// would leave the arena, then integrate. This is the only place a
// particle moves.
func (p *Particle) Update(limits Vec, forceLimit float64) {
	size := float64(p.Size)
	for i := 0; i < 2; i++ {
		p.Forces[i] = math.Max(math.Min(p.Forces[i], forceLimit), -forceLimit)
		projected := p.Pos[i] + p.Forces[i]
		if projected-size < 0 || projected+size > limits[i] {
			p.Forces[i] = -p.Forces[i]
		}
		p.Pos[i] += p.Forces[i]
	}
}

// Draw renders the particle at its current position.
func (p *Particle) Draw(r Renderer) {
	r.FillCircle(int(math.Round(p.Pos[0])), int(math.Round(p.Pos[1])), p.Size, p.Color)
}

// Speed returns the magnitude of the current force vector.
func (p *Particle) Speed() float64 {
	return math.Hypot(p.Forces[0], p.Forces[1])
}
