package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ostrella/clockwise/internal/aggregate"
	"github.com/ostrella/clockwise/internal/cli/formatter"
	"github.com/ostrella/clockwise/internal/service"
)

// ── messages ─────────────────────────────────────────────────────────────────

// clockTickMsg fires every second to drive the live elapsed display.
type clockTickMsg time.Time

// statusLoadedMsg carries a refreshed attendance status.
type statusLoadedMsg struct {
	status *service.AttendanceStatus
	err    error
}

// reportLoadedMsg carries a refreshed weekly aggregation. Generations
// increase with every request; a late arrival from an older request is
// dropped.
type reportLoadedMsg struct {
	generation uint64
	result     *aggregate.Result
	err        error
}

// clockActionMsg is the outcome of a clock in/out triggered from the TUI.
type clockActionMsg struct {
	err error
}

// ── model ────────────────────────────────────────────────────────────────────

// watchModel is a live single-worker dashboard: shift window, running
// HH:MM:SS, an end-of-shift banner, and the week's hour bars.
type watchModel struct {
	app      *App
	workerID string

	status *service.AttendanceStatus
	report *aggregate.Result
	err    error

	// banner is the one-shot end-of-shift notice. Once raised it stays
	// visible for the rest of the session.
	banner string

	reportGen       uint64
	reportDelivered uint64

	width int
}

func newWatchModel(app *App, workerID string) *watchModel {
	return &watchModel{app: app, workerID: workerID}
}

func (m *watchModel) Init() tea.Cmd {
	m.reportGen++
	return tea.Batch(
		m.loadStatus(),
		m.loadReport(m.reportGen),
		clockTick(),
	)
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func (m *watchModel) loadStatus() tea.Cmd {
	return func() tea.Msg {
		st, err := m.app.Attendance.Status(context.Background(), m.workerID)
		return statusLoadedMsg{status: st, err: err}
	}
}

func (m *watchModel) loadReport(gen uint64) tea.Cmd {
	return func() tea.Msg {
		r, err := m.app.Reports.WeeklyHours(context.Background(), m.workerID)
		return reportLoadedMsg{generation: gen, result: r, err: err}
	}
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case clockTickMsg:
		cmds := []tea.Cmd{m.loadStatus(), clockTick()}
		// The weekly bars only move on whole-minute boundaries.
		if time.Time(msg).Second() == 0 {
			m.reportGen++
			cmds = append(cmds, m.loadReport(m.reportGen))
		}
		return m, tea.Batch(cmds...)

	case statusLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = msg.status
		if msg.status.NotifyShiftEnd {
			m.banner = "shift ends in under 5 minutes"
		}
		return m, nil

	case reportLoadedMsg:
		if msg.generation < m.reportDelivered {
			return m, nil
		}
		m.reportDelivered = msg.generation
		if msg.err == nil {
			m.report = msg.result
		}
		return m, nil

	case clockActionMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, m.loadStatus()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "i":
			return m, func() tea.Msg {
				_, err := m.app.Attendance.ClockIn(context.Background(), m.workerID, "")
				return clockActionMsg{err: err}
			}
		case "o":
			return m, func() tea.Msg {
				_, err := m.app.Attendance.ClockOut(context.Background(), m.workerID)
				return clockActionMsg{err: err}
			}
		}
	}
	return m, nil
}

func (m *watchModel) View() string {
	if m.status == nil {
		return formatter.Dim("loading...")
	}

	var b strings.Builder
	b.WriteString(formatter.FormatStatus(m.status, m.app.Display))

	if m.banner != "" {
		b.WriteString("\n")
		b.WriteString(formatter.StyleRed.Render("⏰ " + m.banner))
		b.WriteString("\n")
	}

	if m.report != nil {
		b.WriteString("\n")
		b.WriteString(formatter.FormatHoursReport("This week", m.report))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(formatter.StyleRed.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHelp(m.helpBindings()))
	return b.String()
}

func (m *watchModel) helpBindings() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
	if m.status != nil && m.status.CanStart {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "clock in")))
	}
	if m.status != nil && m.status.OpenEntry != nil {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "clock out")))
	}
	return bindings
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, formatter.Bold(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return strings.Join(parts, formatter.Dim("  ·  "))
}
