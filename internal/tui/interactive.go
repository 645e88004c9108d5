package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rootfind/internal/newton"
	"github.com/san-kum/rootfind/internal/problems"
	"github.com/san-kum/rootfind/internal/trace"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type state int

const (
	stateMenu state = iota
	stateResult
)

type model struct {
	state  state
	cursor int
	names  []string

	registry *problems.Registry
	strategy newton.Strategy

	selected string
	records  []trace.Record
	result   newton.Result
	solveErr error
	pos      int

	width  int
	height int
}

// NewInteractiveApp builds the problem-browser TUI: pick a problem, watch
// the iterate history, flip between step strategies.
func NewInteractiveApp() *model {
	reg := problems.NewRegistry()
	names := make([]string, 0)
	for _, p := range reg.List() {
		names = append(names, p.Name)
	}
	return &model{
		state:    stateMenu,
		names:    names,
		registry: reg,
		width:    80,
		height:   24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateResult:
		return m.resultKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "s":
		if m.strategy == newton.Inverse {
			m.strategy = newton.LeastSquares
		} else {
			m.strategy = newton.Inverse
		}
	case "enter", " ":
		m.selected = m.names[m.cursor]
		m.solve()
		m.state = stateResult
		m.pos = 0
	}
	return m, nil
}

func (m *model) solve() {
	p, err := m.registry.Get(m.selected)
	if err != nil {
		m.solveErr = err
		return
	}
	rec := trace.NewRecorder()
	opts := newton.Options{
		Strategy:  m.strategy,
		Observers: []newton.Observer{rec},
	}
	m.result, m.solveErr = p.Solve(nil, opts)
	m.records = rec.Records()
}

func (m model) resultKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "escape", "backspace":
		m.state = stateMenu
	case "left", "h":
		if m.pos > 0 {
			m.pos--
		}
	case "right", "l":
		if m.pos < len(m.records)-1 {
			m.pos++
		}
	case "home", "g":
		m.pos = 0
	case "end", "G":
		m.pos = len(m.records) - 1
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateResult:
		return m.resultView()
	default:
		return m.menuView()
	}
}

func (m model) menuView() string {
	var b strings.Builder

	b.WriteString(cyan.Render("rootfind") + dim.Render("  newton iteration browser") + "\n\n")

	for i, name := range m.names {
		cursor := "  "
		style := white
		if i == m.cursor {
			cursor = magenta.Render("> ")
			style = magenta
		}
		p, _ := m.registry.Get(name)
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, style.Render(padRight(name, 12)), dim.Render(p.Desc)))
	}

	b.WriteString("\n" + dim.Render(fmt.Sprintf("strategy: %s", m.strategy)) + "\n")
	b.WriteString(dim.Render("enter solve · s strategy · j/k move · q quit") + "\n")
	return b.String()
}

func (m model) resultView() string {
	var b strings.Builder

	b.WriteString(cyan.Render(m.selected) + dim.Render(fmt.Sprintf("  strategy=%s", m.strategy)) + "\n\n")

	if m.solveErr != nil {
		b.WriteString(red.Render(fmt.Sprintf("solve failed: %v", m.solveErr)) + "\n\n")
	}
	if len(m.records) > 0 {
		rec := m.records[m.pos]
		b.WriteString(white.Render(fmt.Sprintf("iteration %d/%d", rec.Iter, len(m.records)-1)) + "\n")
		for i, v := range rec.X {
			b.WriteString(fmt.Sprintf("  x%d = %s\n", i, yellow.Render(fmt.Sprintf("%.12g", v))))
		}
		b.WriteString(fmt.Sprintf("  |f| = %s\n", white.Render(fmt.Sprintf("%.3e", rec.ResidualNorm))))
		b.WriteString("\n" + m.sparkline() + "\n")
	}

	status := green.Render("converged")
	if !m.result.Converged {
		status = yellow.Render("exhausted")
	}
	if m.solveErr != nil {
		status = red.Render("error")
	}
	b.WriteString(fmt.Sprintf("\n%s after %d iterations, root = %v\n", status, m.result.Iterations, m.result.Root))
	b.WriteString(dim.Render("h/l step · g/G ends · esc back · q quit") + "\n")
	return b.String()
}

// sparkline draws log-scaled residual norms with the current position
// highlighted.
func (m model) sparkline() string {
	bars := []rune("▁▂▃▄▅▆▇█")
	lo, hi := math.Inf(1), math.Inf(-1)
	logs := make([]float64, len(m.records))
	for i, rec := range m.records {
		v := math.Log10(rec.ResidualNorm + 1e-300)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 300
		}
		logs[i] = v
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	for i, v := range logs {
		idx := int((v - lo) / span * float64(len(bars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(bars) {
			idx = len(bars) - 1
		}
		ch := string(bars[idx])
		if i == m.pos {
			b.WriteString(magenta.Render(ch))
		} else {
			b.WriteString(dim.Render(ch))
		}
	}
	return b.String()
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

// Run starts the interactive browser.
func Run() error {
	p := tea.NewProgram(*NewInteractiveApp(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
