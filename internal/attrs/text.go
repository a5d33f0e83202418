package attrs

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a packed value written in decimal or with a 0x, 0o or 0b
// prefix. Underscores between digits are allowed.
func Parse(s string) (Encoded, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("parse attributes %q: %w", s, err)
	}
	return Encoded(v), nil
}

// BinaryString returns e as 32 binary digits, most significant bit first.
func (e Encoded) BinaryString() string {
	return fmt.Sprintf("%032b", uint32(e))
}

// String renders every field.
func (e Encoded) String() string {
	return fmt.Sprintf("{lang=%d type=%s balanced=%t font=%s fg=%d bg=%d}",
		e.LanguageID(), e.TokenType(), e.BalancedBrackets(), e.FontStyle(), e.Foreground(), e.Background())
}

var tokenTypeNames = [...]string{
	Other:   "Other",
	Comment: "Comment",
	String:  "String",
	RegEx:   "RegEx",
}

func (t StandardTokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("StandardTokenType(%d)", uint8(t))
}

func (t OptionalStandardTokenType) String() string {
	if t == TokenTypeNotSet {
		return "NotSet"
	}
	return StandardTokenType(t).String()
}

// ParseTokenType accepts a token type name (case-insensitive) or its number.
func ParseTokenType(s string) (StandardTokenType, error) {
	s = strings.TrimSpace(s)
	for i, name := range tokenTypeNames {
		if strings.EqualFold(s, name) {
			return StandardTokenType(i), nil
		}
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil || n > MaxTokenType {
		return 0, fmt.Errorf("unknown token type %q (expected other|comment|string|regex)", s)
	}
	return StandardTokenType(n), nil
}

var fontStyleFlags = [...]struct {
	flag FontStyle
	name string
}{
	{Italic, "Italic"},
	{Bold, "Bold"},
	{Underline, "Underline"},
	{Strikethrough, "Strikethrough"},
}

func (s FontStyle) String() string {
	switch {
	case s == FontStyleNotSet:
		return "NotSet"
	case s == FontStyleNone:
		return "None"
	case s < 0 || uint32(s) > MaxFontStyle:
		return fmt.Sprintf("FontStyle(%d)", int8(s))
	}
	var parts []string
	for _, f := range fontStyleFlags {
		if s&f.flag != 0 {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseFontStyle reads flags joined by '|', ',' or '+', e.g. "bold|underline".
// "none" and the empty string mean FontStyleNone. A plain number is taken as
// the raw mask.
func ParseFontStyle(s string) (FontStyle, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return FontStyleNone, nil
	}
	if n, err := strconv.ParseUint(s, 0, 8); err == nil {
		if n > MaxFontStyle {
			return 0, fmt.Errorf("font style %d out of range [0, %d]", n, MaxFontStyle)
		}
		return FontStyle(n), nil
	}
	var out FontStyle
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' || r == '+' })
	for _, part := range parts {
		part = strings.TrimSpace(part)
		found := false
		for _, f := range fontStyleFlags {
			if strings.EqualFold(part, f.name) {
				out |= f.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown font style %q (expected italic|bold|underline|strikethrough)", part)
		}
	}
	return out, nil
}
