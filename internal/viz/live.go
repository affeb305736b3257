package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/strandsim/internal/metrics"
	"github.com/san-kum/strandsim/internal/sim"
)

const historyCapacity = 600

type TickMsg time.Time

// Model runs a simulation interactively and charts its energy and
// temperature as it goes.
type Model struct {
	s            *sim.Simulation
	stepsPerTick int

	running bool
	err     error

	energyHistory []float64
	tempHistory   []float64
}

func NewModel(cfg sim.Config, stepsPerTick int) (Model, error) {
	s, err := sim.New(cfg)
	if err != nil {
		return Model{}, err
	}
	if err := s.Populate(); err != nil {
		return Model{}, err
	}
	if stepsPerTick < 1 {
		stepsPerTick = 1
	}
	return Model{
		s:             s,
		stepsPerTick:  stepsPerTick,
		running:       true,
		energyHistory: make([]float64, 0, historyCapacity),
		tempHistory:   make([]float64, 0, historyCapacity),
	}, nil
}

// Close releases the simulation's particle storage. Call it once the
// program has finished rendering.
func (m Model) Close() error {
	return m.s.Release()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			// The final View still renders after Quit, so the world
			// must stay allocated; Close frees it.
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			if err := m.s.Populate(); err != nil {
				m.err = err
			} else {
				m.err = nil
				m.energyHistory = m.energyHistory[:0]
				m.tempHistory = m.tempHistory[:0]
				m.running = true
			}
		}
	case TickMsg:
		if m.running && m.err == nil {
			for i := 0; i < m.stepsPerTick; i++ {
				if err := m.s.Step(); err != nil {
					m.err = err
					m.running = false
					break
				}
			}
			smp := m.s.Sample()
			m.energyHistory = appendCapped(m.energyHistory, smp.Total)
			m.tempHistory = appendCapped(m.tempHistory, smp.Temperature)
		}
		return m, tick()
	}
	return m, nil
}

func appendCapped(hist []float64, v float64) []float64 {
	hist = append(hist, v)
	if len(hist) > historyCapacity {
		hist = hist[1:]
	}
	return hist
}

func (m Model) View() string {
	var s strings.Builder

	cfg := m.s.Config()
	s.WriteString(headerStyle.Render(fmt.Sprintf("STRAND  %d monomers", cfg.NumMonomers)) + "\n")

	status := "RUNNING"
	if m.err != nil {
		status = "FAILED: " + m.err.Error()
	} else if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n")

	if len(m.energyHistory) > 1 {
		s.WriteString(graphStyle.Render(asciigraph.Plot(m.energyHistory,
			asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("Total energy (eV)"))) + "\n")
	}
	if len(m.tempHistory) > 1 {
		s.WriteString(graphStyle.Render(asciigraph.Plot(m.tempHistory,
			asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("Temperature (K)"))) + "\n")
	}

	smp := m.s.Sample()
	p := metrics.Momentum(m.s.World())
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.3e s", smp.Time)) + "\n")
	s.WriteString(labelStyle.Render("Total energy") + valueStyle.Render(fmt.Sprintf("%.6f eV", smp.Total)) + "\n")
	s.WriteString(labelStyle.Render("Kinetic") + valueStyle.Render(fmt.Sprintf("%.6f eV", smp.Kinetic)) + "\n")
	s.WriteString(labelStyle.Render("Temperature") + valueStyle.Render(fmt.Sprintf("%.1f K", smp.Temperature)) + "\n")
	s.WriteString(labelStyle.Render("|Momentum|") + valueStyle.Render(fmt.Sprintf("%.3e kg m/s", p.Length())) + "\n")

	s.WriteString(helpStyle.Render("SP:Pause  R:Restart  Q:Quit"))
	return s.String()
}
