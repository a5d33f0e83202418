// Package testkit holds invariant checks shared by tests and fuzz targets.
package testkit

import (
	"fmt"

	"tokattr/internal/attrs"
	"tokattr/internal/token"
)

// CheckLine verifies that l is ordered and survives the binary line form
// unchanged.
func CheckLine(l token.Line) error {
	if err := l.Validate(); err != nil {
		return err
	}
	raw := token.EncodeLine(l)
	if len(raw) != 2*len(l) {
		return fmt.Errorf("binary line has %d words for %d tokens", len(raw), len(l))
	}
	back, err := token.DecodeLine(raw)
	if err != nil {
		return fmt.Errorf("decode binary line: %w", err)
	}
	if len(back) != len(l) {
		return fmt.Errorf("decoded %d tokens, want %d", len(back), len(l))
	}
	for i := range l {
		if back[i] != l[i] {
			return fmt.Errorf("token %d: got %+v, want %+v", i, back[i], l[i])
		}
	}
	return nil
}

// CheckPatch verifies that out is in with exactly the fields present in p
// replaced. Present values are compared after truncation to the field width.
func CheckPatch(in, out attrs.Encoded, p attrs.Patch) error {
	want := [len(attrs.Layout)]struct {
		value uint32
		ok    bool
	}{}
	if v, ok := p.LanguageID.Get(); ok {
		want[attrs.FieldLanguageID].value, want[attrs.FieldLanguageID].ok = v, true
	}
	if v, ok := p.TokenType.Get(); ok {
		want[attrs.FieldTokenType].value, want[attrs.FieldTokenType].ok = uint32(v), true
	}
	if v, ok := p.BalancedBrackets.Get(); ok {
		want[attrs.FieldBalancedBrackets].ok = true
		if v {
			want[attrs.FieldBalancedBrackets].value = 1
		}
	}
	if v, ok := p.FontStyle.Get(); ok {
		// FontStyle is int8; NotSet (-1) reaches the field as 0xF
		want[attrs.FieldFontStyle].value, want[attrs.FieldFontStyle].ok = uint32(uint8(v)), true
	}
	if v, ok := p.Foreground.Get(); ok {
		want[attrs.FieldForeground].value, want[attrs.FieldForeground].ok = v, true
	}
	if v, ok := p.Background.Get(); ok {
		want[attrs.FieldBackground].value, want[attrs.FieldBackground].ok = v, true
	}

	for i, f := range attrs.Layout {
		got := f.Extract(out)
		if !want[i].ok {
			if prev := f.Extract(in); got != prev {
				return fmt.Errorf("%s changed without request: %d -> %d", f.Name, prev, got)
			}
			continue
		}
		if exp := want[i].value & f.Max(); got != exp {
			return fmt.Errorf("%s = %d, want %d", f.Name, got, exp)
		}
	}
	return nil
}
