package sim

// Vec is a 2D vector indexed by axis (0 = x, 1 = y).
type Vec [2]float64

// Color is an RGB triple as handed to the renderer.
type Color struct {
	R, G, B uint8
}

// Scale returns the color with every channel multiplied by f.
func (c Color) Scale(f float64) Color {
	return Color{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

// Renderer is the drawing surface the world renders onto. The gui and
// viz packages provide real implementations; Headless discards
// everything so the core can run without a display.
type Renderer interface {
	Clear(c Color)
	FillCircle(x, y, r int, c Color)
}

type nopRenderer struct{}

func (nopRenderer) Clear(Color) {}

func (nopRenderer) FillCircle(int, int, int, Color) {}

// Headless is a renderer that draws nothing.
var Headless Renderer = nopRenderer{}

// Params holds every constant governing a world. Zero values are not
// usable; start from DefaultParams.
type Params struct {
	Width, Height float64

	FrameRate     int
	ParticleCount int
	ParticleSize  int
	SpawnMargin   float64
	ColorMin      int
	ColorRange    int
	ForceLimit    float64

	GravitonSize  float64
	GravitonLife  int
	GravitonSpawn int     // gravitons emitted per particle per frame
	GravitonNoise float64 // full per-axis noise range (±half)
	ImpactScale   float64 // graviton force -> particle impulse
	ColorScale    float64 // creator color -> graviton color

	Background Color
}

// DefaultParams returns the canonical toy configuration.
func DefaultParams() Params {
	return Params{
		Width:         700,
		Height:        700,
		FrameRate:     30,
		ParticleCount: 3,
		ParticleSize:  10,
		SpawnMargin:   10,
		ColorMin:      100,
		ColorRange:    155,
		ForceLimit:    2,
		GravitonSize:  1,
		GravitonLife:  100,
		GravitonSpawn: 30,
		GravitonNoise: 10,
		ImpactScale:   -0.01,
		ColorScale:    0.5,
		Background:    Color{0, 0, 0},
	}
}

// Limits returns the arena bounds as a vector.
func (p Params) Limits() Vec { return Vec{p.Width, p.Height} }

// FrameStats counts what happened to the graviton population during a
// single frame.
type FrameStats struct {
	Frame   int
	Spawned int
	Expired int // life ran out
	Escaped int // left the arena
	Impacts int // absorbed by a particle
	Active  int // retained at end of frame
}

// Metric accumulates a scalar over a run, observed once per frame.
type Metric interface {
	Name() string
	Observe(w *World, fs FrameStats)
	Value() float64
	Reset()
}

// Observer receives a callback after every completed frame.
type Observer interface {
	OnFrame(w *World, fs FrameStats)
}

// Result holds the outcome of a headless run.
type Result struct {
	Frames  []FrameStats
	Metrics map[string]float64
}
