package trace

import (
	"fmt"
	"strings"
)

// Level controls how many events pass.
type Level uint8

const (
	LevelOff Level = iota
	LevelError
	LevelPhase
	LevelDetail
	LevelDebug
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

// finest scope each level lets through; errors are handled separately
var levelScope = [...]Scope{LevelOff: 0, LevelError: 0, LevelPhase: ScopeStage, LevelDetail: ScopeItem, LevelDebug: ScopeValue}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", uint8(l))
}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level %q (expected %s)", s, strings.Join(levelNames[:], "|"))
}

// Allows reports whether an event of kind and scope passes l.
func (l Level) Allows(kind Kind, scope Scope) bool {
	if l == LevelOff || int(l) >= len(levelScope) {
		return false
	}
	if kind == KindError {
		return true
	}
	return scope <= levelScope[l]
}
