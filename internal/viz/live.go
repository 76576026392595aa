// Package viz renders the simulation live in the terminal on a braille
// canvas, for machines without a display.
package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravitons/internal/sim"
)

const (
	canvasWidth     = 70
	canvasHeight    = 24
	historyCapacity = 300
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// surface scales arena coordinates down to canvas sub-pixels. Braille
// cells carry no color, so colors are dropped.
type surface struct {
	canvas         *Canvas
	scaleX, scaleY float64
}

func (s *surface) Clear(sim.Color) { s.canvas.Clear() }

func (s *surface) FillCircle(x, y, r int, _ sim.Color) {
	sr := int(float64(r) * s.scaleX)
	s.canvas.FillDisc(int(float64(x)*s.scaleX), int(float64(y)*s.scaleY), sr)
}

// Model holds the world plus terminal view state.
type Model struct {
	world      *sim.World
	params     sim.Params
	seed       int64
	surface    *surface
	running    bool
	last       sim.FrameStats
	popHistory []float64
	totalHits  int
}

func NewModel(params sim.Params, seed int64) Model {
	canvas := NewCanvas(canvasWidth, canvasHeight)
	return Model{
		world:  sim.NewWorld(params, rand.New(rand.NewSource(seed))),
		params: params,
		seed:   seed,
		surface: &surface{
			canvas: canvas,
			scaleX: float64(canvasWidth*2) / params.Width,
			scaleY: float64(canvasHeight*4) / params.Height,
		},
		running:    true,
		popHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.params.FrameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the world once per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		}
	case TickMsg:
		if m.running {
			m.last = m.world.Step(m.surface)
			m.totalHits += m.last.Impacts
			m.popHistory = append(m.popHistory, float64(m.last.Active))
			if len(m.popHistory) > historyCapacity {
				m.popHistory = m.popHistory[1:]
			}
		} else {
			m.world.Draw(m.surface)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) reset() {
	m.seed++
	m.world = sim.NewWorld(m.params, rand.New(rand.NewSource(m.seed)))
	m.last = sim.FrameStats{}
	m.popHistory = m.popHistory[:0]
	m.totalHits = 0
}

// View renders the arena next to a stats sidebar.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.surface.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("GRAVITONS") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.popHistory) > 1 {
		chart := asciigraph.Plot(m.popHistory,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("gravitons"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.world.Frame())) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d", len(m.world.Particles))) + "\n")
	s.WriteString(labelStyle.Render("Gravitons") + valueStyle.Render(fmt.Sprintf("%d", m.last.Active)) + "\n")
	s.WriteString(labelStyle.Render("Impacts") + valueStyle.Render(fmt.Sprintf("%d", m.totalHits)) + "\n")
	s.WriteString(labelStyle.Render("Seed") + valueStyle.Render(fmt.Sprintf("%d", m.seed)) + "\n")

	s.WriteString(helpStyle.Render("─────────────────────\nSP:Pause R:Reset Q:Quit"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// Run starts the live terminal view and blocks until quit.
func Run(params sim.Params, seed int64) error {
	p := tea.NewProgram(NewModel(params, seed))
	_, err := p.Run()
	return err
}
