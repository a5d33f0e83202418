// Package observ measures how long the stages of a tokattr command take.
package observ

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Stage is one measured step of a command.
type Stage struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer collects stages in the order they were started. Safe for concurrent use.
type Timer struct {
	mu     sync.Mutex
	stages []Stage
}

// NewTimer creates an empty Timer.
func NewTimer() *Timer { return &Timer{stages: make([]Stage, 0, 8)} }

// Begin starts a stage and returns its index.
func (t *Timer) Begin(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stages = append(t.stages, Stage{Name: name, Start: time.Now()})
	return len(t.stages) - 1
}

// End finishes the stage at idx. Unknown indexes are ignored.
func (t *Timer) End(idx int, note string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if idx < 0 || idx >= len(t.stages) {
		return
	}
	s := &t.stages[idx]
	s.Dur = time.Since(s.Start)
	s.Note = note
}

// Track starts a stage and returns the function that ends it.
func (t *Timer) Track(name string) func(note string) {
	idx := t.Begin(name)
	return func(note string) { t.End(idx, note) }
}

// StageReport is the serialized form of one stage.
type StageReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report is the serialized form of a Timer.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Stages  []StageReport `json:"stages"`
}

// Report returns every stage and their summed duration in milliseconds.
func (t *Timer) Report() Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.stages) == 0 {
		return Report{}
	}
	report := Report{Stages: make([]StageReport, len(t.stages))}
	var total time.Duration
	for i, s := range t.stages {
		total += s.Dur
		report.Stages[i] = StageReport{
			Name:       s.Name,
			DurationMS: toMillis(s.Dur),
			Note:       s.Note,
		}
	}
	report.TotalMS = toMillis(total)
	return report
}

// WriteSummary prints one aligned line per stage followed by the total.
func (t *Timer) WriteSummary(w io.Writer) error {
	report := t.Report()
	if _, err := fmt.Fprintln(w, "timings:"); err != nil {
		return err
	}
	for _, s := range report.Stages {
		line := fmt.Sprintf("  %-20s %7.2f ms", s.Name, s.DurationMS)
		if s.Note != "" {
			line += "  // " + s.Note
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  %-20s %7.2f ms\n", "total", report.TotalMS)
	return err
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
