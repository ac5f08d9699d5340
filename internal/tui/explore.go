// Package tui is an interactive terminal explorer for composed potentials.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/potlab/internal/config"
	"github.com/san-kum/potlab/internal/pot"
	"github.com/san-kum/potlab/internal/scan"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type screen int

const (
	screenMenu screen = iota
	screenCurve
)

var modes = []pot.Mode{pot.Value, pot.First, pot.Second}

type model struct {
	screen  screen
	cursor  int
	presets []string

	selected  string
	potential pot.Potential
	grid      scan.Grid
	modeIdx   int
	series    *scan.Series
	evalErr   error

	width  int
	height int
}

func NewExplorer() tea.Model {
	return &model{
		presets: config.ListPresets(),
		grid:    scan.DefaultGrid(),
		width:   80,
		height:  24,
	}
}

// Run launches the explorer and blocks until it exits.
func Run() error {
	_, err := tea.NewProgram(NewExplorer(), tea.WithAltScreen()).Run()
	return err
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "q" || key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenMenu:
		switch key {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}
		case "enter":
			m.selectPreset(m.presets[m.cursor])
		}
	case screenCurve:
		switch key {
		case "esc":
			m.screen = screenMenu
		case "m":
			m.modeIdx = (m.modeIdx + 1) % len(modes)
			m.resample()
		case "left":
			m.grid.Rmin -= 0.1
			if m.grid.Rmin < 0.1 {
				m.grid.Rmin = 0.1
			}
			m.resample()
		case "right":
			if m.grid.Rmin+0.2 < m.grid.Rmax {
				m.grid.Rmin += 0.1
			}
			m.resample()
		case "-":
			m.grid.Rmax += 0.2
			m.resample()
		case "+", "=":
			if m.grid.Rmax-0.2 > m.grid.Rmin {
				m.grid.Rmax -= 0.2
			}
			m.resample()
		}
	}
	return m, nil
}

func (m *model) selectPreset(name string) {
	cfg := config.GetPreset(name)
	if cfg == nil {
		return
	}
	p, err := cfg.Potential.Build()
	if err != nil {
		m.evalErr = err
		return
	}
	m.selected = name
	m.potential = p
	m.grid = scan.Grid{Rmin: cfg.Scan.Rmin, Rmax: cfg.Scan.Rmax, Points: cfg.Scan.Points}
	m.modeIdx = 0
	m.screen = screenCurve
	m.resample()
}

func (m *model) resample() {
	m.series, m.evalErr = scan.Sample(m.potential, modes[m.modeIdx], m.grid)
}

func (m *model) View() string {
	switch m.screen {
	case screenCurve:
		return m.viewCurve()
	default:
		return m.viewMenu()
	}
}

func (m *model) viewMenu() string {
	var b strings.Builder
	b.WriteString(cyan.Render("potlab") + dim.Render("  interatomic potential explorer") + "\n\n")
	for i, name := range m.presets {
		cursor := "  "
		style := white
		if i == m.cursor {
			cursor = "> "
			style = magenta
		}
		b.WriteString(cursor + style.Render(name) + "\n")
	}
	b.WriteString("\n" + dim.Render("↑/↓ select · enter open · q quit"))
	return b.String()
}

func (m *model) viewCurve() string {
	var b strings.Builder
	b.WriteString(cyan.Render(m.selected) + "  " + magenta.Render(m.potential.String()) +
		dim.Render(fmt.Sprintf("  [%s]  cutoff %.2f", modes[m.modeIdx], m.potential.Cutoff())) + "\n\n")

	if m.evalErr != nil {
		b.WriteString(red.Render("error: "+m.evalErr.Error()) + "\n")
	} else if m.series != nil {
		h := m.height - 8
		if h < 6 {
			h = 6
		}
		w := m.width - 12
		if w < 20 {
			w = 20
		}
		b.WriteString(asciigraph.Plot(m.series.V,
			asciigraph.Width(w),
			asciigraph.Height(h),
		) + "\n")
		b.WriteString(dim.Render(fmt.Sprintf("r ∈ [%.2f, %.2f], %d points",
			m.grid.Rmin, m.grid.Rmax, m.grid.Points)) + "\n")
	}

	b.WriteString("\n" + dim.Render("m mode · ←/→ rmin · +/- rmax · esc back · q quit"))
	return b.String()
}
