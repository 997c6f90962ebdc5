package tui

import (
	"math"
	"strings"
	"time"

	"workwatch/internal/config"
	"workwatch/internal/notify"
	"workwatch/internal/session"
	"workwatch/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenMenu screen = iota
	screenWorking
	screenLogs
)

// prompt is the overlay sub-state. While active it gets first refusal on
// every key event; screen-level bindings never see a key the prompt consumed.
type prompt int

const (
	promptNone prompt = iota
	promptInput
	promptEdit
)

type tickMsg time.Time

type appModel struct {
	cfg      config.Config
	history  *store.Store
	notifier *notify.Notifier

	width  int
	height int

	screen screen
	prompt prompt
	// editIdx is the log index captured when the edit prompt opened. The entry
	// may be gone by confirm time; Overwrite discards the edit then.
	editIdx int

	elapsed   uint64
	startedAt time.Time

	logs  session.Logs
	input textinput.Model
}

func newAppModel(cfg config.Config, history *store.Store, notifier *notify.Notifier) appModel {
	input := textinput.New()
	input.Placeholder = "Log entry"
	input.CharLimit = 200
	input.Width = 40

	return appModel{
		cfg:      cfg,
		history:  history,
		notifier: notifier,
		screen:   screenMenu,
		prompt:   promptNone,
		editIdx:  -1,
		logs:     session.NewLogs(),
		input:    input,
	}
}

func (m appModel) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// The timer only runs on the working screen; viewing logs or the menu
		// does not accumulate time.
		if m.screen == screenWorking && m.elapsed < math.MaxUint64 {
			m.elapsed++
		}
		return m, tick()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenWorking:
			return m.updateWorking(msg)
		case screenLogs:
			return m.updateLogs(msg)
		}
	}
	return m, nil
}

func (m appModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		text := m.input.Value()
		if strings.TrimSpace(text) != "" {
			if m.prompt == promptInput {
				m.logs.Append(text)
			} else {
				m.logs.Overwrite(m.editIdx, text)
			}
		}
		m.closePrompt()
		return m, nil
	case tea.KeyEsc:
		m.closePrompt()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *appModel) closePrompt() {
	m.input.Reset()
	m.input.Blur()
	m.prompt = promptNone
	m.editIdx = -1
}

func (m *appModel) openPrompt(kind prompt, seed string) tea.Cmd {
	m.prompt = kind
	m.input.SetValue(seed)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m appModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c":
		m.clockIn()
		return m, nil
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateWorking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c":
		m.clockOut()
		return m, nil
	case "a":
		return m, m.openPrompt(promptInput, "")
	case "l":
		m.screen = screenLogs
		return m, nil
	}
	return m, nil
}

func (m appModel) updateLogs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "t":
		m.screen = screenWorking
		return m, nil
	case "a":
		return m, m.openPrompt(promptInput, "")
	case "e":
		if i, ok := m.logs.Selected(); ok {
			text, _ := m.logs.Entry(i)
			m.editIdx = i
			return m, m.openPrompt(promptEdit, text)
		}
		return m, nil
	case "d":
		m.logs.DeleteSelected()
		return m, nil
	case "c":
		m.clockOut()
		return m, nil
	case "up", "k":
		m.logs.MoveUp()
		return m, nil
	case "down", "j":
		m.logs.MoveDown()
		return m, nil
	}
	return m, nil
}

func (m *appModel) clockIn() {
	m.screen = screenWorking
	m.notifier.ClockIn()
	m.elapsed = 0
	m.startedAt = time.Now()
}

// clockOut snapshots the session for the webhook and the history row, then
// resets for the next one. Recording is best-effort: a failed insert must
// never disturb the loop.
func (m *appModel) clockOut() {
	snapshot := m.logs.Entries()
	m.notifier.ClockOut(m.elapsed, snapshot)
	if m.history != nil {
		_ = m.history.Record(store.Session{
			StartedAt: m.startedAt,
			EndedAt:   time.Now(),
			Seconds:   m.elapsed,
			Logs:      snapshot,
		})
	}
	m.logs.Clear()
	m.elapsed = 0
	m.screen = screenMenu
}
