package trace

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
)

func nextSeq() uint64 { return seqCounter.Add(1) }

// Span is an open begin/end pair. A nil *Span is valid and does nothing, so
// callers never check whether tracing is on.
type Span struct {
	tracer Tracer
	id     uint64
	parent uint64
	scope  Scope
	name   string
	start  time.Time

	mu    sync.Mutex
	attrs []Attr
}

type spanKey struct{}

// Start opens a span under the span already in ctx and returns a context
// carrying the new one. When the tracer filters the scope out, ctx is returned
// unchanged with a nil span.
func Start(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	t := FromContext(ctx)
	if !t.Allows(KindBegin, scope) {
		return ctx, nil
	}
	s := &Span{
		tracer: t,
		id:     spanCounter.Add(1),
		parent: spanID(ctx),
		scope:  scope,
		name:   name,
		start:  time.Now(),
	}
	t.Emit(Event{Seq: nextSeq(), Time: s.start, Kind: KindBegin, Scope: scope, Span: s.id, Parent: s.parent, Name: name})
	return context.WithValue(ctx, spanKey{}, s), s
}

// Set attaches a key/value pair, reported on the end event.
func (s *Span) Set(key, value string) *Span {
	if s == nil {
		return s
	}
	s.mu.Lock()
	s.attrs = append(s.attrs, Attr{Key: key, Value: value})
	s.mu.Unlock()
	return s
}

// End emits the end event with the elapsed time.
func (s *Span) End() {
	if s == nil {
		return
	}
	now := time.Now()
	s.mu.Lock()
	attrs := s.attrs
	s.mu.Unlock()
	s.tracer.Emit(Event{
		Seq:     nextSeq(),
		Time:    now,
		Kind:    KindEnd,
		Scope:   s.scope,
		Span:    s.id,
		Parent:  s.parent,
		Name:    s.name,
		Elapsed: now.Sub(s.start),
		Attrs:   attrs,
	})
}

// ID returns the span id, 0 for a nil span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

func spanID(ctx context.Context) uint64 {
	if s, ok := ctx.Value(spanKey{}).(*Span); ok {
		return s.id
	}
	return 0
}

// Point emits an instant event under the current span.
func Point(ctx context.Context, scope Scope, name, detail string) {
	instant(ctx, KindPoint, scope, name, detail)
}

// Error emits err under the current span. It passes every level but off.
func Error(ctx context.Context, scope Scope, name string, err error) {
	if err == nil {
		return
	}
	instant(ctx, KindError, scope, name, err.Error())
}

func instant(ctx context.Context, kind Kind, scope Scope, name, detail string) {
	t := FromContext(ctx)
	if !t.Allows(kind, scope) {
		return
	}
	t.Emit(Event{Seq: nextSeq(), Time: time.Now(), Kind: kind, Scope: scope, Parent: spanID(ctx), Name: name, Detail: detail})
}
