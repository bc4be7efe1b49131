package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/leaflet/internal/config"
	"github.com/san-kum/leaflet/internal/metrics"
	"github.com/san-kum/leaflet/internal/playback"
	"github.com/san-kum/leaflet/internal/trace"
)

const (
	speedStep = 100
	barWidth  = 40
)

// TickMsg advances playback. Seq ties it to the play session that
// scheduled it so ticks left over from before a pause are dropped.
type TickMsg struct {
	Seq  int
	Time time.Time
}

// Player is the interactive playback screen.
type Player struct {
	ctrl     *playback.Controller
	trace    trace.Trace
	summary  map[string]float64
	keys     keyMap
	help     help.Model
	theme    Theme
	tickSeq  int
	width    int
	quitting bool
}

// NewPlayer loads tr into ctrl and wraps both in a Bubble Tea model.
func NewPlayer(ctrl *playback.Controller, tr trace.Trace, themeName string) Player {
	ctrl.Load(tr)
	return Player{
		ctrl:    ctrl,
		trace:   tr,
		summary: metrics.Summarize(tr),
		keys:    defaultKeyMap(),
		help:    help.New(),
		theme:   GetTheme(themeName),
		width:   80,
	}
}

func (m Player) Init() tea.Cmd { return nil }

func (m Player) Controller() *playback.Controller { return m.ctrl }

func (m Player) Theme() Theme { return m.theme }

func (m Player) scheduleTick() (Player, tea.Cmd) {
	m.tickSeq++
	seq := m.tickSeq
	return m, tea.Tick(m.ctrl.Speed(), func(t time.Time) tea.Msg {
		return TickMsg{Seq: seq, Time: t}
	})
}

func (m Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if msg.Seq != m.tickSeq {
			return m, nil
		}
		if m.ctrl.Tick() {
			return m.scheduleTick()
		}
	}
	return m, nil
}

func (m Player) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Play):
		m.ctrl.Toggle()
		if m.ctrl.Status() == playback.Playing {
			return m.scheduleTick()
		}
	case key.Matches(msg, m.keys.Step):
		m.ctrl.Step()
	case key.Matches(msg, m.keys.Reset):
		m.ctrl.Reset()
	case key.Matches(msg, m.keys.Faster):
		m.adjustSpeed(-speedStep)
	case key.Matches(msg, m.keys.Slower):
		m.adjustSpeed(speedStep)
	case key.Matches(msg, m.keys.Theme):
		m.theme = m.theme.Next()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Player) adjustSpeed(deltaMs int) {
	ms := config.ClampSpeed(int(m.ctrl.Speed()/time.Millisecond) + deltaMs)
	// Clamped values are always positive.
	_ = m.ctrl.SetSpeed(ms)
}

func (m Player) View() string {
	if m.quitting {
		return ""
	}

	th := m.theme
	header := lipgloss.NewStyle().Bold(true).Foreground(th.Accent).MarginBottom(1)
	label := lipgloss.NewStyle().Foreground(th.Muted).Width(12)
	value := lipgloss.NewStyle().Foreground(th.Text)
	narration := lipgloss.NewStyle().Foreground(th.Text).Italic(true).MarginTop(1)
	graph := lipgloss.NewStyle().Foreground(th.Compared).Padding(1, 0)

	st := m.ctrl.State()
	step, idx, ok := m.ctrl.Current()

	var s strings.Builder
	s.WriteString(header.Render(strings.ToUpper(m.trace.Algorithm.String())) + "\n")
	s.WriteString(label.Render("Status") + value.Render(st.Status.String()) + "\n")
	s.WriteString(label.Render("Step") + value.Render(fmt.Sprintf("%d of %d", idx+1, m.trace.Len())) + "\n")
	s.WriteString(label.Render("Speed") + value.Render(fmt.Sprintf("%dms", st.Speed.Milliseconds())) + "\n")
	for _, name := range []string{"comparisons", "swaps", "scans"} {
		if v := m.summary[name]; v > 0 {
			s.WriteString(label.Render(name) + value.Render(fmt.Sprintf("%.0f", v)) + "\n")
		}
	}
	s.WriteString("\n")

	if ok {
		if step.Kind == trace.KindTree {
			s.WriteString(m.renderTree(step))
		} else {
			s.WriteString(m.renderBars(step))
			if len(step.Values) > 1 {
				chart := asciigraph.Plot(step.Values, asciigraph.Height(5), asciigraph.Width(barWidth), asciigraph.Caption("values"))
				s.WriteString(graph.Render(chart) + "\n")
			}
		}
		s.WriteString(narration.Render(step.Narration) + "\n")
	}

	s.WriteString("\n" + m.help.View(m.keys))
	return s.String()
}

func (m Player) renderBars(step trace.Step) string {
	maxAbs := maxMagnitude(step.Values)
	var b strings.Builder
	for i, v := range step.Values {
		n := 1
		if maxAbs > 0 {
			n = int(float64(barWidth)*math.Abs(v)/maxAbs + 0.5)
			if n < 1 {
				n = 1
			}
		}
		style := lipgloss.NewStyle().Foreground(m.theme.ColorFor(step.ColorAt(i)))
		fmt.Fprintf(&b, "%3d %s %s\n", i, style.Render(strings.Repeat("█", n)), trace.FormatValue(v))
	}
	return b.String()
}

func (m Player) renderTree(step trace.Step) string {
	node := lipgloss.NewStyle().Foreground(m.theme.Default).Bold(true)
	var b strings.Builder
	levels := TreeLevels(step.Values)
	for depth, level := range levels {
		indent := strings.Repeat("  ", len(levels)-depth-1)
		parts := make([]string, len(level))
		for i, v := range level {
			parts[i] = node.Render("(" + trace.FormatValue(v) + ")")
		}
		b.WriteString(indent + strings.Join(parts, " ") + "\n")
	}
	return b.String()
}
