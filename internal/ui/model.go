package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dayline/internal/tracker"
)

// Model owns Bubble Tea state for the main TUI experience.
type Model struct {
	ctx context.Context
	trk *tracker.Tracker

	now      time.Time
	width    int
	selected int

	mode        mode
	input       textinput.Model
	pendingName string
	editingID   string

	statusLine string
	errorLine  string
}

type mode uint8

const (
	modeNormal mode = iota
	modeAddName
	modeAddColor
	modeEditName
	modeEditColor
	modeConfirmDelete
)

type tickMsg time.Time

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, trk *tracker.Tracker) Model {
	input := textinput.New()
	input.CharLimit = 64

	return Model{
		ctx:        ctx,
		trk:        trk,
		now:        trk.Now(),
		width:      80,
		mode:       modeNormal,
		input:      input,
		statusLine: "Press enter to start or stop the selected activity.",
	}
}

// Init schedules the first display tick.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update wires TUI state transitions from user input and the display tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tickMsg:
		// The tick only refreshes the live display; nothing is committed
		// to the timeline until a session stops.
		m.now = time.Time(msg)
		return m, tickCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeNormal {
		return m.handleInputKey(msg)
	}

	activities := m.trk.Activities()

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		if m.selected < len(activities)-1 {
			m.selected++
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "enter", " ":
		if len(activities) == 0 {
			return m, nil
		}
		return m.toggleSelected(activities[m.selected])
	case "s":
		return m.stopSession()
	case "a":
		return m.beginAdd()
	case "e":
		if len(activities) == 0 {
			return m, nil
		}
		return m.beginEdit(activities[m.selected])
	case "d":
		if len(activities) == 0 {
			return m, nil
		}
		m.mode = modeConfirmDelete
		m.editingID = activities[m.selected].ID
		m.statusLine = ""
		m.errorLine = ""
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeConfirmDelete {
		switch msg.String() {
		case "y", "Y":
			return m.confirmDelete()
		case "n", "N", "esc":
			return m.cancelInput("Delete cancelled.")
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		return m.submitInput()
	case tea.KeyEsc:
		return m.cancelInput("Cancelled.")
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) toggleSelected(activity tracker.Activity) (tea.Model, tea.Cmd) {
	outcome, err := m.trk.Toggle(activity.ID)
	if err != nil {
		m.errorLine = err.Error()
		return m, nil
	}

	m.errorLine = ""
	switch outcome {
	case tracker.ToggleStarted:
		m.statusLine = fmt.Sprintf("Started %s.", activity.Name)
	case tracker.ToggleStopped:
		m.statusLine = fmt.Sprintf("Stopped %s.", activity.Name)
	case tracker.ToggleSwitched:
		m.statusLine = fmt.Sprintf("Switched to %s.", activity.Name)
	}
	return m, nil
}

func (m Model) stopSession() (tea.Model, tea.Cmd) {
	stopped, err := m.trk.Stop()
	if err != nil {
		m.errorLine = err.Error()
		return m, nil
	}
	if !stopped.Running() {
		m.statusLine = "No activity is running."
		return m, nil
	}
	if activity, ok := m.trk.Activity(stopped.ActivityID); ok {
		m.statusLine = fmt.Sprintf("Stopped %s.", activity.Name)
	} else {
		m.statusLine = "Stopped."
	}
	m.errorLine = ""
	return m, nil
}

func (m Model) beginAdd() (tea.Model, tea.Cmd) {
	m.mode = modeAddName
	m.pendingName = ""
	m.input.SetValue("")
	m.input.Placeholder = "activity name"
	m.input.Focus()
	m.statusLine = ""
	m.errorLine = ""
	return m, textinput.Blink
}

func (m Model) beginEdit(activity tracker.Activity) (tea.Model, tea.Cmd) {
	m.mode = modeEditName
	m.editingID = activity.ID
	m.input.SetValue(activity.Name)
	m.input.Placeholder = "activity name"
	m.input.Focus()
	m.statusLine = ""
	m.errorLine = ""
	return m, textinput.Blink
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case modeAddName, modeEditName:
		if value == "" {
			m.errorLine = "Name cannot be empty."
			return m, nil
		}
		m.pendingName = value
		if m.mode == modeAddName {
			m.mode = modeAddColor
			m.input.SetValue("#3498db")
		} else {
			m.mode = modeEditColor
			if activity, ok := m.trk.Activity(m.editingID); ok {
				m.input.SetValue(activity.Color)
			}
		}
		m.input.Placeholder = "#rrggbb"
		return m, nil
	case modeAddColor:
		activity, err := m.trk.AddActivity(m.pendingName, value)
		if err != nil {
			m.errorLine = err.Error()
			return m, nil
		}
		return m.finishInput(fmt.Sprintf("Added %s.", activity.Name))
	case modeEditColor:
		activity, err := m.trk.EditActivity(m.editingID, m.pendingName, value)
		if err != nil {
			m.errorLine = err.Error()
			return m, nil
		}
		return m.finishInput(fmt.Sprintf("Updated %s.", activity.Name))
	default:
		return m, nil
	}
}

func (m Model) confirmDelete() (tea.Model, tea.Cmd) {
	name := m.editingID
	if activity, ok := m.trk.Activity(m.editingID); ok {
		name = activity.Name
	}
	if err := m.trk.DeleteActivity(m.editingID); err != nil {
		m.errorLine = err.Error()
		m.mode = modeNormal
		return m, nil
	}
	if m.selected >= len(m.trk.Activities()) && m.selected > 0 {
		m.selected--
	}
	return m.finishInput(fmt.Sprintf("Removed %s.", name))
}

func (m Model) finishInput(status string) (tea.Model, tea.Cmd) {
	m.mode = modeNormal
	m.editingID = ""
	m.pendingName = ""
	m.input.Blur()
	m.statusLine = status
	m.errorLine = ""
	return m, nil
}

func (m Model) cancelInput(status string) (tea.Model, tea.Cmd) {
	m.mode = modeNormal
	m.editingID = ""
	m.pendingName = ""
	m.input.Blur()
	m.statusLine = status
	m.errorLine = ""
	return m, nil
}
