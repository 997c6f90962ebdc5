package tui

import (
	"fmt"
	"strings"

	"workwatch/internal/timefmt"

	"github.com/charmbracelet/lipgloss"
)

const minPaneWidth = 40

func (m appModel) paneWidth() int {
	w := m.width - 2
	if w < minPaneWidth {
		w = minPaneWidth
	}
	return w
}

func (m appModel) View() string {
	w := m.paneWidth()

	mainHeight := m.height - 4 // controls pane
	if m.prompt != promptNone {
		mainHeight -= 3
	}
	if mainHeight < 3 {
		mainHeight = 3
	}

	panes := []string{renderPane(m.mainTitle(), m.mainBody(), w, mainHeight, lipgloss.Center)}
	if m.prompt != promptNone {
		panes = append(panes, renderPane(m.promptTitle(), m.input.View(), w, 1, lipgloss.Left))
	}
	panes = append(panes, renderPane("Controls", m.controls(), w, 1, lipgloss.Left))
	return lipgloss.JoinVertical(lipgloss.Left, panes...)
}

func renderPane(title, body string, width, height int, align lipgloss.Position) string {
	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPaneBorder).
		Width(width).
		Height(height).
		Align(align)
	return overlayTitle(st.Render(body), title)
}

// overlayTitle splices the title into the top border line, lipgloss borders
// having no native title support.
func overlayTitle(pane, title string) string {
	if title == "" {
		return pane
	}
	lines := strings.SplitN(pane, "\n", 2)
	if len(lines) < 2 {
		return pane
	}
	top := []rune(lines[0])
	label := []rune(title)
	if len(label)+2 >= len(top) {
		return pane
	}
	copy(top[1:], label)
	return string(top) + "\n" + lines[1]
}

func (m appModel) mainTitle() string {
	switch m.screen {
	case screenWorking:
		return "Working"
	case screenLogs:
		return "Logs"
	default:
		return "Menu"
	}
}

func (m appModel) promptTitle() string {
	if m.prompt == promptEdit {
		return "Edit"
	}
	return "Input"
}

func (m appModel) mainBody() string {
	switch m.screen {
	case screenWorking:
		return fmt.Sprintf("Elapsed Time: %s", timefmt.Compact(m.elapsed))
	case screenLogs:
		return m.logsBody()
	default:
		return fmt.Sprintf("Welcome To WorkWatch, %s", m.cfg.Username)
	}
}

func (m appModel) logsBody() string {
	if m.logs.Empty() {
		return "No Logs Yet"
	}
	selected, _ := m.logs.Selected()
	lines := make([]string, 0, m.logs.Len())
	for i, entry := range m.logs.Entries() {
		if i == selected {
			lines = append(lines, styleSelectedLog().Render(entry))
		} else {
			lines = append(lines, entry)
		}
	}
	return strings.Join(lines, "\n")
}

func (m appModel) controls() string {
	switch m.screen {
	case screenWorking:
		return " L - View Logs | A - Add Log | C - Clock Out "
	case screenLogs:
		return " T - View Time | A - Add Log | E - Edit Log | D - Delete Log | C - Clock Out "
	default:
		return " C - Clock In | Q - Quit "
	}
}
