package tui

import (
	"workwatch/internal/config"
	"workwatch/internal/notify"
	"workwatch/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive tracker. history may be nil when the session
// database could not be opened; the TUI then simply skips recording.
func Run(cfg config.Config, history *store.Store, notifier *notify.Notifier) error {
	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(cfg, history, notifier)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
