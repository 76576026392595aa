// Package gui renders the simulation in a Raylib window. This is the
// only package that touches the display; the world itself stays
// headless behind the sim.Renderer interface.
package gui

import (
	"fmt"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/gravitons/internal/sim"
)

var (
	colText    = rl.NewColor(180, 180, 180, 255)
	colTextDim = rl.NewColor(90, 90, 90, 255)
)

type App struct {
	World     *sim.World
	Params    sim.Params
	Seed      int64
	Paused    bool
	ShowStats bool

	last sim.FrameStats
}

// surface adapts Raylib drawing calls to the sim.Renderer contract.
type surface struct{}

func (surface) Clear(c sim.Color) {
	rl.ClearBackground(rl.NewColor(c.R, c.G, c.B, 255))
}

func (surface) FillCircle(x, y, r int, c sim.Color) {
	rl.DrawCircle(int32(x), int32(y), float32(r), rl.NewColor(c.R, c.G, c.B, 255))
}

func NewApp(params sim.Params, seed int64) *App {
	return &App{
		World:     sim.NewWorld(params, rand.New(rand.NewSource(seed))),
		Params:    params,
		Seed:      seed,
		ShowStats: true,
	}
}

// Run opens the window and blocks until it is closed. A quit request
// takes effect at the frame boundary; the frame in flight completes.
func Run(params sim.Params, seed int64) {
	rl.InitWindow(int32(params.Width), int32(params.Height), "gravitons")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(params.FrameRate))

	app := NewApp(params, seed)
	for !rl.WindowShouldClose() {
		app.handleInput()
		app.frame()
	}
}

func (a *App) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Paused = !a.Paused
	}
	if rl.IsKeyPressed(rl.KeyS) {
		a.ShowStats = !a.ShowStats
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Seed++
		a.World = sim.NewWorld(a.Params, rand.New(rand.NewSource(a.Seed)))
		a.last = sim.FrameStats{}
	}
}

func (a *App) frame() {
	rl.BeginDrawing()
	if a.Paused {
		a.World.Draw(surface{})
	} else {
		a.last = a.World.Step(surface{})
	}
	if a.ShowStats {
		a.drawStats()
	}
	rl.EndDrawing()
}

func (a *App) drawStats() {
	rl.DrawText(fmt.Sprintf("frame %d", a.World.Frame()), 10, 10, 10, colText)
	rl.DrawText(fmt.Sprintf("gravitons %d", a.last.Active), 10, 24, 10, colText)
	rl.DrawText(fmt.Sprintf("impacts %d", a.last.Impacts), 10, 38, 10, colText)
	rl.DrawText(fmt.Sprintf("seed %d", a.Seed), 10, 52, 10, colTextDim)
	if a.Paused {
		rl.DrawText("paused", 10, 66, 10, colTextDim)
	}
	rl.DrawText("space pause | r reset | s stats", 10, int32(a.Params.Height)-20, 10, colTextDim)
}
