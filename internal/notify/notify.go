// Package notify posts clock-in/clock-out notifications to a Discord-style
// webhook. Dispatch is fire-and-forget: the TUI never waits on delivery and
// delivery failure is dropped.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"workwatch/internal/timefmt"
)

// embedColor is the accent used for every embed.
const embedColor = 0x00ff88

type payload struct {
	Username string  `json:"username"`
	Embeds   []embed `json:"embeds"`
}

type embed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
}

// Notifier dispatches webhook notifications. The zero URL disables dispatch
// entirely; that is a supported configuration, not an error.
type Notifier struct {
	URL     string
	BotName string
	User    string

	Client *http.Client
	// Now is overridable so payload tests get a fixed timestamp.
	Now func() time.Time
}

func New(url, botName, user string) *Notifier {
	return &Notifier{
		URL:     strings.TrimSpace(url),
		BotName: botName,
		User:    user,
		Client:  &http.Client{},
		Now:     time.Now,
	}
}

// ClockIn announces the start of a session.
func (n *Notifier) ClockIn() {
	title := fmt.Sprintf("%s has clocked in!", n.User)
	n.dispatch(title, clockInDescription(n.Now()))
}

// ClockOut announces the end of a session with the total elapsed time and the
// session's logs. Callers pass a snapshot; nothing here aliases live state.
func (n *Notifier) ClockOut(elapsedSeconds uint64, logs []string) {
	title := fmt.Sprintf("%s has clocked out!", n.User)
	n.dispatch(title, clockOutDescription(n.Now(), elapsedSeconds, logs))
}

func clockInDescription(now time.Time) string {
	date := now.Format("01/02/2006")
	clock := now.Format("15:04:05 (UTC-0700)")
	return fmt.Sprintf("\nDate: %s\nTime: %s", date, clock)
}

func clockOutDescription(now time.Time, elapsedSeconds uint64, logs []string) string {
	date := now.Format("01/02/2006")
	clock := now.Format("15:04:05 (UTC-0700)")

	var b strings.Builder
	fmt.Fprintf(&b, "\nDate: %s\nTime: %s\n\nTotal Logged Time: %s\n\n",
		date, clock, timefmt.Verbose(elapsedSeconds))
	if len(logs) == 0 {
		b.WriteString("No logs to display.")
	} else {
		b.WriteString("Logs:\n")
		b.WriteString(strings.Join(logs, "\n"))
	}
	return b.String()
}

// dispatch hands the payload to a goroutine the caller never joins. Delivery
// errors (network, non-2xx) are intentionally discarded.
func (n *Notifier) dispatch(title, description string) {
	if n.URL == "" {
		return
	}

	p := payload{
		Username: n.BotName,
		Embeds: []embed{{
			Title:       title,
			Description: description,
			Color:       embedColor,
		}},
	}

	url := n.URL
	client := n.Client
	go func() {
		body, err := json.Marshal(p)
		if err != nil {
			return
		}
		resp, err := client.Post(url, "application/json", bytes.NewReader(body))
		if err != nil {
			return
		}
		_ = resp.Body.Close()
	}()
}
