package sim

import "math"

// Graviton is a short-lived body emitted by a particle. Creator is a
// stable index into the world's particle slice, used only to exclude
// self-collision; the world owns the graviton, the creator does not.
type Graviton struct {
	Creator int
	Pos     Vec
	Forces  Vec
	Color   Color
	Size    float64
	Life    int
}

// NewGraviton builds a graviton from its creator's state. Position and
// forces are value copies: later changes to the creator never reach a
// graviton already in flight.
func NewGraviton(creator int, pos, forces Vec, creatorColor Color, size float64, life int, colorScale float64) *Graviton {
	return &Graviton{
		Creator: creator,
		Pos:     pos,
		Forces:  forces,
		Color:   creatorColor.Scale(colorScale),
		Size:    size,
		Life:    life,
	}
}

// ApplyForce adds an impulse unconditionally. Gravitons ignore walls.
func (g *Graviton) ApplyForce(force Vec) {
	g.Forces[0] += force[0]
	g.Forces[1] += force[1]
}

// Update integrates position. No reflection: gravitons that leave the
// arena are culled by the world, not bounced.
func (g *Graviton) Update() {
	g.Pos[0] += g.Forces[0]
	g.Pos[1] += g.Forces[1]
}

// Draw renders the graviton at its current position.
func (g *Graviton) Draw(r Renderer) {
	r.FillCircle(int(math.Round(g.Pos[0])), int(math.Round(g.Pos[1])), int(g.Size), g.Color)
}

// Hits reports whether the graviton overlaps the particle.
func (g *Graviton) Hits(p *Particle) bool {
	dx := g.Pos[0] - p.Pos[0]
	dy := g.Pos[1] - p.Pos[1]
	return math.Hypot(dx, dy) < float64(p.Size)+g.Size
}
