// Package session holds the in-memory state of one working session: the
// ordered free-text log entries and the current selection.
package session

// Logs is an ordered list of log entries plus a single optional selection.
// The selection is -1 exactly when the list is empty; otherwise it is always
// a valid index.
type Logs struct {
	entries  []string
	selected int
}

func NewLogs() Logs {
	return Logs{selected: -1}
}

func (l *Logs) Len() int { return len(l.entries) }

func (l *Logs) Empty() bool { return len(l.entries) == 0 }

// Entries returns a copy of the log list; callers never alias the backing slice.
func (l *Logs) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Logs) Entry(i int) (string, bool) {
	if i < 0 || i >= len(l.entries) {
		return "", false
	}
	return l.entries[i], true
}

// Selected reports the selected index, or -1 and false when the list is empty.
func (l *Logs) Selected() (int, bool) {
	if l.selected < 0 {
		return -1, false
	}
	return l.selected, true
}

func (l *Logs) SelectedText() (string, bool) {
	if l.selected < 0 {
		return "", false
	}
	return l.entries[l.selected], true
}

// Append adds an entry at the end. The first entry ever appended becomes the
// selection; an existing selection is left alone.
func (l *Logs) Append(text string) {
	l.entries = append(l.entries, text)
	if l.selected < 0 {
		l.selected = 0
	}
}

// Overwrite replaces the entry at i. Out-of-range indexes are ignored so a
// stale edit target (entry deleted meanwhile) discards the edit.
func (l *Logs) Overwrite(i int, text string) {
	if i < 0 || i >= len(l.entries) {
		return
	}
	l.entries[i] = text
}

// DeleteSelected removes the selected entry. The selection steps back one
// position, clamped into the new valid range; it becomes empty only when the
// list does.
func (l *Logs) DeleteSelected() {
	i := l.selected
	if i < 0 {
		return
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	if len(l.entries) == 0 {
		l.selected = -1
		return
	}
	i--
	if i < 0 {
		i = 0
	}
	if i > len(l.entries)-1 {
		i = len(l.entries) - 1
	}
	l.selected = i
}

// MoveUp moves the selection one entry up, wrapping at the top. No-op when empty.
func (l *Logs) MoveUp() {
	if l.selected < 0 {
		return
	}
	n := len(l.entries)
	l.selected = (l.selected + n - 1) % n
}

// MoveDown moves the selection one entry down, wrapping at the bottom. No-op when empty.
func (l *Logs) MoveDown() {
	if l.selected < 0 {
		return
	}
	l.selected = (l.selected + 1) % len(l.entries)
}

// Clear empties the list for the next session.
func (l *Logs) Clear() {
	l.entries = nil
	l.selected = -1
}
