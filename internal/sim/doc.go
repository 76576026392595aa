// Package sim implements the particle/graviton world: a fixed set of
// particles drifts inside a bounded arena, each frame emitting
// short-lived gravitons that knock other particles on contact.
//
// The core is headless. [World.Step] advances one frame against any
// [Renderer] (use [Headless] for none), and [Runner] drives a world
// for a fixed frame count with metrics attached:
//
//	w := sim.NewWorld(sim.DefaultParams(), rand.New(rand.NewSource(42)))
//	r := sim.NewRunner(w)
//	result, err := r.Run(ctx, 300)
//
// All state mutation happens on a single control path per frame; the
// only cancellation point is the frame boundary.
package sim
