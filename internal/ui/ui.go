// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/astra-sky/internal/state"
	"github.com/litescript/astra-sky/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewDashboard ViewMode = iota
	ViewAltitude
	ViewFootprints
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// DataUpdateMsg signals a fresh plan computation is available.
	DataUpdateMsg struct {
		Snapshot state.Snapshot
	}

	// ErrorMsg signals a compute error.
	ErrorMsg struct {
		Error error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state *state.Manager

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool

	// Data snapshot (updated on DataUpdateMsg and ticks)
	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager) Model {
	return Model{
		state:    stateMgr,
		viewMode: ViewDashboard,
		snapshot: stateMgr.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "d":
			m.viewMode = ViewDashboard
		case "2", "a":
			m.viewMode = ViewAltitude
		case "3", "f":
			m.viewMode = ViewFootprints

		case "tab":
			m.viewMode = (m.viewMode + 1) % 3

		case "j", "down":
			m.state.SelectNext()
			m.snapshot = m.state.Snapshot()
		case "k", "up":
			m.state.SelectPrev()
			m.snapshot = m.state.Snapshot()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		cmds = append(cmds, tickCmd())
		m.snapshot = m.state.Snapshot()

	case DataUpdateMsg:
		m.snapshot = msg.Snapshot
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewDashboard:
		content = RenderDashboard(m.snapshot, m.width)
	case ViewAltitude:
		content = RenderAltitudePanel(m.snapshot, m.width)
	case ViewFootprints:
		content = RenderFootprintPanel(m.snapshot, m.width, m.contentHeight())
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) contentHeight() int {
	// Logo and tabs take ~7 lines, footer 2.
	h := m.height - 9
	if h < 8 {
		h = 8
	}
	return h
}

func (m Model) renderHeader() string {
	logo := []string{
		`   ▄▄▄   ███████ ████████ ██████   ▄▄▄          ███████ ██   ██ ██    ██`,
		`  ██▀██  ██         ██    ██   ██ ██▀██  █████  ██      ██  ██   ██  ██ `,
		`  ██▄▄██ ███████    ██    ██████  ██▄▄██        ███████ █████     ████  `,
		`  ██  ██      ██    ██    ██  ██  ██  ██             ██ ██  ██     ██   `,
		`  ██  ██ ███████    ██    ██   ██ ██  ██        ███████ ██   ██    ██   `,
	}

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6"))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range logo {
		b.WriteString(accent.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(muted.Render(fmt.Sprintf("  Night planning · Sky footprints | v%s", version.Version)))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Targets", "[2] Altitude", "[3] Footprints"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))

	var status string
	switch {
	case m.snapshot.LastError != nil:
		status = errorStyle.Render("ERROR: " + m.snapshot.LastError.Error())
	case m.snapshot.LastCompute.IsZero():
		status = dimStyle.Render("Computing night plans...")
	default:
		status = dimStyle.Render(fmt.Sprintf("computed %s ago (%s)",
			time.Since(m.snapshot.LastCompute).Round(time.Second),
			m.snapshot.ComputeDuration.Round(time.Millisecond)))
	}

	var help string
	switch m.viewMode {
	case ViewFootprints:
		help = dimStyle.Render("tab: switch view | q: quit")
	default:
		help = dimStyle.Render("j/k: target | tab: switch view | q: quit")
	}

	return "  " + status + "  " + dimStyle.Render("|") + "  " + help
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// SendDataUpdate creates a command that sends a data update message.
func SendDataUpdate(snapshot state.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return DataUpdateMsg{Snapshot: snapshot}
	}
}

// SendError creates a command that sends an error message.
func SendError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Error: err}
	}
}
