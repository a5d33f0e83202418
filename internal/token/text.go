package token

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tokattr/internal/attrs"
)

// ParseLine reads whitespace-separated "start:value" pairs. Values accept any
// base attrs.Parse does.
func ParseLine(s string) (Line, error) {
	fields := strings.Fields(s)
	l := make(Line, 0, len(fields))
	for _, f := range fields {
		startText, valueText, ok := strings.Cut(f, ":")
		if !ok {
			return nil, fmt.Errorf("token %q: expected start:value", f)
		}
		start, err := strconv.ParseUint(startText, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("token %q: bad start index: %w", f, err)
		}
		v, err := attrs.Parse(valueText)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", f, err)
		}
		l = append(l, Token{StartIndex: uint32(start), Attrs: v})
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Format writes l in the form ParseLine reads, values in hex.
func (l Line) Format() string {
	var sb strings.Builder
	for i, tok := range l {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d:0x%08x", tok.StartIndex, uint32(tok.Attrs))
	}
	return sb.String()
}

// ParseLines reads one Line per text line. Lines starting with '#' are
// skipped, a trailing '#' comment is dropped and a blank line is a line
// without tokens.
func ParseLines(r io.Reader) ([]Line, error) {
	var lines []Line
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := sc.Text()
		if strings.HasPrefix(strings.TrimSpace(text), "#") {
			continue
		}
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		l, err := ParseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		lines = append(lines, l)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
