package trace

import "time"

// Kind is the type of an event.
type Kind uint8

const (
	KindBegin Kind = iota + 1
	KindEnd
	KindPoint
	KindError // passes every level except off
)

var kindNames = [...]string{KindBegin: "begin", KindEnd: "end", KindPoint: "point", KindError: "error"}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of an event. Lower values are coarser.
type Scope uint8

const (
	ScopeCommand Scope = iota + 1 // one CLI invocation
	ScopeStage                    // parse, decode, pack
	ScopeItem                     // one file or stored table
	ScopeValue                    // one packed value
)

var scopeNames = [...]string{ScopeCommand: "command", ScopeStage: "stage", ScopeItem: "item", ScopeValue: "value"}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return "unknown"
}

// Attr is one key/value pair attached to an event. Order is kept.
type Attr struct {
	Key   string
	Value string
}

// Event is a single trace record.
type Event struct {
	Seq     uint64
	Time    time.Time
	Kind    Kind
	Scope   Scope
	Span    uint64 // 0 for points outside a span
	Parent  uint64
	Name    string
	Detail  string
	Elapsed time.Duration // set on KindEnd
	Attrs   []Attr
}
