// Package viz renders energy series as terminal charts.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/strandsim/internal/sim"
	"github.com/san-kum/strandsim/internal/storage"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// PlotRun renders the stored energy and temperature series of one run.
func PlotRun(meta *storage.RunMetadata, samples []sim.Sample) string {
	var s strings.Builder

	s.WriteString(headerStyle.Render(strings.ToUpper(meta.ID)) + "\n")
	s.WriteString(labelStyle.Render("Monomers") + valueStyle.Render(fmt.Sprintf("%d", meta.Monomers)) + "\n")
	s.WriteString(labelStyle.Render("Time step") + valueStyle.Render(fmt.Sprintf("%.2e s", meta.TimeStep)) + "\n")
	s.WriteString(labelStyle.Render("Steps") + valueStyle.Render(fmt.Sprintf("%d", meta.Steps)) + "\n")
	if meta.ThermostatTau > 0 {
		s.WriteString(labelStyle.Render("Thermostat") +
			valueStyle.Render(fmt.Sprintf("%.0f K, tau %.2e s", meta.ThermostatTemp, meta.ThermostatTau)) + "\n")
	}
	for name, v := range meta.Metrics {
		s.WriteString(labelStyle.Render(name) + valueStyle.Render(fmt.Sprintf("%.6g", v)) + "\n")
	}

	if len(samples) > 1 {
		total := make([]float64, len(samples))
		temp := make([]float64, len(samples))
		for i, smp := range samples {
			total[i] = smp.Total
			temp[i] = smp.Temperature
		}
		s.WriteString(graphStyle.Render(asciigraph.Plot(total,
			asciigraph.Height(10), asciigraph.Width(70), asciigraph.Caption("Total energy (eV)"))) + "\n")
		s.WriteString(graphStyle.Render(asciigraph.Plot(temp,
			asciigraph.Height(10), asciigraph.Width(70), asciigraph.Caption("Temperature (K)"))) + "\n")
	}

	return s.String()
}
