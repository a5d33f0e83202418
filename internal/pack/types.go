package pack

import (
	"time"

	"tokattr/internal/store"
)

// Stage identifies a pack pipeline stage.
type Stage uint8

const (
	StageRead Stage = iota + 1
	StageParse
	StageStore
)

func (s Stage) String() string {
	switch s {
	case StageRead:
		return "read"
	case StageParse:
		return "parse"
	case StageStore:
		return "store"
	default:
		return "unknown"
	}
}

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is in the given stage.
	StatusWorking Status = "working"
	// StatusDone indicates the file is stored.
	StatusDone Status = "done"
	// StatusError indicates the file failed.
	StatusError Status = "error"
)

// Event reports progress for one file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// Sink receives progress events.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// Request describes one pack run.
type Request struct {
	Files    []string
	Store    *store.Store
	Jobs     int
	Progress Sink
}

// Entry is the outcome for one file.
type Entry struct {
	File   string
	Digest store.Digest
	Lines  int
	Tokens int
	Cached bool // an identical table was already stored
	Err    error
}

// Result lists entries in request order.
type Result struct {
	Entries []Entry
}

// Failed returns the entries that have an error.
func (r Result) Failed() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Err != nil {
			out = append(out, e)
		}
	}
	return out
}
