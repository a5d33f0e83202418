package token_test

import (
	"errors"
	"strings"
	"testing"

	"tokattr/internal/attrs"
	"tokattr/internal/token"
)

func sampleLine() token.Line {
	return token.Line{
		{StartIndex: 0, Attrs: attrs.New(1, attrs.Other, false, attrs.FontStyleNone, 1, 0)},
		{StartIndex: 4, Attrs: attrs.New(1, attrs.String, false, attrs.Italic, 2, 0)},
		{StartIndex: 11, Attrs: attrs.New(1, attrs.Comment, true, attrs.FontStyleNone, 3, 5)},
	}
}

func TestEncodeDecodeLine(t *testing.T) {
	l := sampleLine()
	raw := token.EncodeLine(l)
	if len(raw) != 6 {
		t.Fatalf("expected 6 words, got %d", len(raw))
	}
	if raw[2] != 4 || raw[3] != uint32(l[1].Attrs) {
		t.Fatalf("unexpected layout: %v", raw)
	}
	back, err := token.DecodeLine(raw)
	if err != nil {
		t.Fatalf("DecodeLine: %v", err)
	}
	if len(back) != len(l) {
		t.Fatalf("got %d tokens, want %d", len(back), len(l))
	}
	for i := range l {
		if back[i] != l[i] {
			t.Fatalf("token %d: got %+v, want %+v", i, back[i], l[i])
		}
	}
}

func TestDecodeLineErrors(t *testing.T) {
	if _, err := token.DecodeLine([]uint32{0, 1, 2}); !errors.Is(err, token.ErrOddLength) {
		t.Fatalf("expected ErrOddLength, got %v", err)
	}
	if _, err := token.DecodeLine([]uint32{5, 1, 5, 2}); !errors.Is(err, token.ErrUnordered) {
		t.Fatalf("expected ErrUnordered, got %v", err)
	}
	l, err := token.DecodeLine(nil)
	if err != nil || len(l) != 0 {
		t.Fatalf("empty line: %v %v", l, err)
	}
}

func TestLineAt(t *testing.T) {
	l := sampleLine()
	cases := []struct {
		offset int
		want   attrs.StandardTokenType
	}{
		{0, attrs.Other}, {3, attrs.Other}, {4, attrs.String}, {10, attrs.String}, {11, attrs.Comment}, {500, attrs.Comment},
	}
	for _, tc := range cases {
		v, ok := l.At(tc.offset)
		if !ok {
			t.Fatalf("At(%d) found nothing", tc.offset)
		}
		if v.TokenType() != tc.want {
			t.Fatalf("At(%d) = %v, want %v", tc.offset, v.TokenType(), tc.want)
		}
	}
	if _, ok := l.At(-1); ok {
		t.Fatal("negative offset must not match")
	}
	shifted := token.Line{{StartIndex: 3, Attrs: 1}}
	if _, ok := shifted.At(2); ok {
		t.Fatal("offset before the first token must not match")
	}
	if _, ok := token.Line(nil).At(0); ok {
		t.Fatal("empty line must not match")
	}
}

func TestParseLineAndFormat(t *testing.T) {
	l, err := token.ParseLine("0:0x6632B301  7:1714598657\t9:0b1")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if len(l) != 3 || l[0].Attrs != l[1].Attrs || l[2].Attrs != 1 {
		t.Fatalf("unexpected tokens: %+v", l)
	}
	if got := l.Format(); got != "0:0x6632b301 7:0x6632b301 9:0x00000001" {
		t.Fatalf("Format() = %q", got)
	}
	again, err := token.ParseLine(l.Format())
	if err != nil || len(again) != 3 || again[2] != l[2] {
		t.Fatalf("Format output does not parse back: %v %+v", err, again)
	}
}

func TestParseLineErrors(t *testing.T) {
	for _, in := range []string{"0", "x:1", "0:zz", "3:1 2:1", "-1:0"} {
		if _, err := token.ParseLine(in); err == nil {
			t.Fatalf("ParseLine(%q) should fail", in)
		}
	}
}

func TestParseLines(t *testing.T) {
	src := strings.Join([]string{
		"# header comment",
		"0:1 4:2 # trailing",
		"",
		"0:3",
	}, "\n")
	lines, err := token.ParseLines(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if len(lines[0]) != 2 || len(lines[1]) != 0 || len(lines[2]) != 1 {
		t.Fatalf("unexpected token counts: %d %d %d", len(lines[0]), len(lines[1]), len(lines[2]))
	}

	_, err = token.ParseLines(strings.NewReader("0:1\n0:bad\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected error mentioning line 2, got %v", err)
	}
}
