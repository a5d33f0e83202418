package trace

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Format is the encoding of written events.
type Format uint8

const (
	FormatAuto Format = iota
	FormatText
	FormatNDJSON
)

func appendEvent(dst []byte, ev Event, format Format) []byte {
	if format == FormatNDJSON {
		return appendJSON(dst, ev)
	}
	return appendText(dst, ev)
}

type jsonEvent struct {
	Seq       uint64            `json:"seq"`
	Time      string            `json:"time"`
	Kind      string            `json:"kind"`
	Scope     string            `json:"scope"`
	Span      uint64            `json:"span,omitempty"`
	Parent    uint64            `json:"parent,omitempty"`
	Name      string            `json:"name"`
	Detail    string            `json:"detail,omitempty"`
	ElapsedUS int64             `json:"elapsed_us,omitempty"`
	Attrs     map[string]string `json:"attrs,omitempty"`
}

func appendJSON(dst []byte, ev Event) []byte {
	j := jsonEvent{
		Seq:       ev.Seq,
		Time:      ev.Time.UTC().Format(time.RFC3339Nano),
		Kind:      ev.Kind.String(),
		Scope:     ev.Scope.String(),
		Span:      ev.Span,
		Parent:    ev.Parent,
		Name:      ev.Name,
		Detail:    ev.Detail,
		ElapsedUS: ev.Elapsed.Microseconds(),
	}
	if len(ev.Attrs) > 0 {
		j.Attrs = make(map[string]string, len(ev.Attrs))
		for _, a := range ev.Attrs {
			j.Attrs[a.Key] = a.Value
		}
	}
	data, err := json.Marshal(j)
	if err != nil {
		// only strings and numbers inside, cannot fail
		return dst
	}
	dst = append(dst, data...)
	return append(dst, '\n')
}

// appendText writes one line: "[seq] <indent><mark> name (detail) k=v ... +elapsed".
func appendText(dst []byte, ev Event) []byte {
	dst = append(dst, '[')
	seq := strconv.FormatUint(ev.Seq, 10)
	for i := len(seq); i < 6; i++ {
		dst = append(dst, ' ')
	}
	dst = append(dst, seq...)
	dst = append(dst, "] "...)
	if ev.Scope > ScopeCommand {
		dst = append(dst, strings.Repeat("  ", int(ev.Scope-ScopeCommand))...)
	}
	switch ev.Kind {
	case KindBegin:
		dst = append(dst, "→ "...)
	case KindEnd:
		dst = append(dst, "← "...)
	case KindPoint:
		dst = append(dst, "• "...)
	case KindError:
		dst = append(dst, "! "...)
	}
	dst = append(dst, ev.Name...)
	if ev.Detail != "" {
		dst = append(dst, " ("...)
		dst = append(dst, ev.Detail...)
		dst = append(dst, ')')
	}
	for _, a := range ev.Attrs {
		dst = append(dst, ' ')
		dst = append(dst, a.Key...)
		dst = append(dst, '=')
		dst = append(dst, a.Value...)
	}
	if ev.Kind == KindEnd {
		dst = append(dst, " +"...)
		dst = append(dst, ev.Elapsed.Round(time.Microsecond).String()...)
	}
	return append(dst, '\n')
}
