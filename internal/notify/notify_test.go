package notify

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 4, 15, 6, 7, 0, time.FixedZone("X", 2*3600))
}

func TestClockOutDelivery(t *testing.T) {
	got := make(chan []byte, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got <- body
	}))
	defer srv.Close()

	n := New(srv.URL, "WorkWatch", "alice")
	n.Now = fixedNow
	n.ClockOut(7503, []string{"wrote tests", "fixed the build"})

	var body []byte
	select {
	case body = <-got:
	case <-time.After(2 * time.Second):
		t.Fatalf("webhook was never delivered")
	}

	var p struct {
		Username string `json:"username"`
		Embeds   []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Color       int    `json:"color"`
		} `json:"embeds"`
	}
	if err := json.Unmarshal(body, &p); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if p.Username != "WorkWatch" {
		t.Errorf("username = %q, want WorkWatch", p.Username)
	}
	if len(p.Embeds) != 1 {
		t.Fatalf("embeds = %d, want 1", len(p.Embeds))
	}
	e := p.Embeds[0]
	if e.Title != "alice has clocked out!" {
		t.Errorf("title = %q", e.Title)
	}
	if e.Color != 0x00ff88 {
		t.Errorf("color = %#x, want 0x00ff88", e.Color)
	}
	for _, want := range []string{
		"Date: 03/04/2026",
		"Time: 15:06:07 (UTC+0200)",
		"Total Logged Time: 2 Hours, 5 Minutes, 3 Seconds",
		"Logs:\nwrote tests\nfixed the build",
	} {
		if !strings.Contains(e.Description, want) {
			t.Errorf("description missing %q; got %q", want, e.Description)
		}
	}
}

func TestClockOutWithoutLogsUsesPlaceholder(t *testing.T) {
	desc := clockOutDescription(fixedNow(), 5, nil)
	if !strings.Contains(desc, "No logs to display.") {
		t.Fatalf("description missing placeholder; got %q", desc)
	}
	if strings.Contains(desc, "Logs:") {
		t.Fatalf("empty session must not render a Logs block; got %q", desc)
	}
}

type recordingTransport struct {
	hits chan struct{}
}

func (rt recordingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	rt.hits <- struct{}{}
	return &http.Response{StatusCode: 204, Body: http.NoBody}, nil
}

func TestUnconfiguredURLSkipsDispatch(t *testing.T) {
	rt := recordingTransport{hits: make(chan struct{}, 2)}
	n := New("", "WorkWatch", "alice")
	n.Client = &http.Client{Transport: rt}

	n.ClockIn()
	n.ClockOut(10, []string{"x"})

	select {
	case <-rt.hits:
		t.Fatalf("dispatch attempted with empty webhook URL")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestDeliveryFailureIsSwallowed(t *testing.T) {
	// Point at a server that immediately refuses; the dispatch goroutine must
	// not panic or surface anything.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	srv.Close()

	n := New(srv.URL, "WorkWatch", "alice")
	n.ClockIn()
	time.Sleep(100 * time.Millisecond)
}
