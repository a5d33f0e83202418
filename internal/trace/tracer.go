package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// Tracer receives events. Implementations must be safe for concurrent use.
type Tracer interface {
	// Allows reports whether an event would be recorded, so callers can skip
	// building it.
	Allows(kind Kind, scope Scope) bool
	Emit(ev Event)
	Close() error
}

type nop struct{}

func (nop) Allows(Kind, Scope) bool { return false }
func (nop) Emit(Event) {}
func (nop) Close() error { return nil }

// Nop drops everything.
var Nop Tracer = nop{}

// Config selects level, format and destination.
type Config struct {
	Level      Level
	Format     Format    // FormatAuto picks NDJSON for .ndjson/.jsonl paths
	Output     io.Writer // takes precedence over OutputPath
	OutputPath string    // "" or "-" means stderr
}

// New builds the tracer described by cfg.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	format := cfg.Format
	if format == FormatAuto {
		format = FormatText
		if strings.HasSuffix(cfg.OutputPath, ".ndjson") || strings.HasSuffix(cfg.OutputPath, ".jsonl") {
			format = FormatNDJSON
		}
	}

	w := cfg.Output
	var closer io.Closer
	switch {
	case w != nil:
	case cfg.OutputPath == "" || cfg.OutputPath == "-":
		w = os.Stderr
	default:
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open trace output: %w", err)
		}
		w, closer = f, f
	}
	t := NewWriter(w, cfg.Level, format)
	t.closer = closer
	return t, nil
}

// WriterTracer formats events and writes each one as it arrives. Write errors
// are counted, never returned to the emitter.
type WriterTracer struct {
	level  Level
	format Format

	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	buf    []byte

	dropped atomic.Uint64
}

// NewWriter returns a tracer writing to w. w is not closed by Close.
func NewWriter(w io.Writer, level Level, format Format) *WriterTracer {
	return &WriterTracer{w: w, level: level, format: format}
}

// Allows implements Tracer.
func (t *WriterTracer) Allows(kind Kind, scope Scope) bool {
	return t.level.Allows(kind, scope)
}

// Emit implements Tracer.
func (t *WriterTracer) Emit(ev Event) {
	if !t.level.Allows(ev.Kind, ev.Scope) {
		return
	}
	if ev.Seq == 0 {
		ev.Seq = nextSeq()
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf = appendEvent(t.buf[:0], ev, t.format)
	if _, err := t.w.Write(t.buf); err != nil {
		t.dropped.Add(1)
	}
}

// Dropped returns how many events failed to write.
func (t *WriterTracer) Dropped() uint64 { return t.dropped.Load() }

// Close closes the output file opened by New, if any.
func (t *WriterTracer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closer == nil {
		return nil
	}
	err := t.closer.Close()
	t.closer = nil
	if n := t.dropped.Load(); n > 0 && err == nil {
		err = fmt.Errorf("trace: %d events could not be written", n)
	}
	return err
}
