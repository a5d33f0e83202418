package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tokattr/internal/pack"
)

func TestProgressModelTracksFiles(t *testing.T) {
	events := make(chan pack.Event)
	m := NewProgressModel("pack", []string{"a.tok", "b.tok"}, events).(*progressModel)

	m.Update(eventMsg{File: "a.tok", Stage: pack.StageParse, Status: pack.StatusWorking})
	if got := m.files[0].stage; got != pack.StageParse {
		t.Fatalf("stage = %s", got)
	}
	m.Update(eventMsg{File: "a.tok", Status: pack.StatusDone})
	m.Update(eventMsg{File: "b.tok", Status: pack.StatusError, Err: errors.New("boom")})
	// late events for finished files are ignored
	m.Update(eventMsg{File: "a.tok", Stage: pack.StageStore, Status: pack.StatusWorking})
	m.Update(eventMsg{File: "unknown", Status: pack.StatusDone})

	if m.files[0].status != pack.StatusDone || m.files[1].status != pack.StatusError {
		t.Fatalf("files = %+v", m.files)
	}
	if m.finished() != 2 || m.failed != 1 {
		t.Fatalf("finished=%d failed=%d", m.finished(), m.failed)
	}
	if p := m.percent(); p != 1 {
		t.Fatalf("percent = %v", p)
	}

	m.Update(doneMsg{})
	view := m.View()
	for _, want := range []string{"done: pack 2/2, 1 failed", "a.tok", "b.tok"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestProgressPartialStages(t *testing.T) {
	m := NewProgressModel("pack", []string{"a", "b"}, nil).(*progressModel)
	m.Update(eventMsg{File: "a", Stage: pack.StageStore, Status: pack.StatusWorking})
	if p := m.percent(); p != 0.4 {
		t.Fatalf("percent = %v", p)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdefgh", 6); got != "abc..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("abc", 10); got != "abc" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Fatalf("truncate = %q", got)
	}
}

func TestEmptyView(t *testing.T) {
	if v := NewProgressModel("pack", nil, nil).View(); v != "" {
		t.Fatalf("view = %q", v)
	}
}

func TestCtrlCAborts(t *testing.T) {
	m := NewProgressModel("pack", []string{"a"}, nil).(*progressModel)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.aborted || cmd == nil {
		t.Fatal("ctrl+c must abort the view")
	}
	if !strings.Contains(m.View(), "aborted: pack 0/1") {
		t.Fatalf("view = %q", m.View())
	}
}
