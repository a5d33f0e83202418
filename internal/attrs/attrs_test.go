package attrs_test

import (
	"testing"

	"tokattr/internal/attrs"
)

func assertFields(t *testing.T, e attrs.Encoded, want attrs.Fields) {
	t.Helper()
	if got := attrs.Decode(e); got != want {
		t.Fatalf("decode %s:\n got  %+v\n want %+v", e.BinaryString(), got, want)
	}
}

func scenarioA() attrs.Encoded {
	return attrs.New(1, attrs.RegEx, false, attrs.Underline|attrs.Bold, 101, 102)
}

var scenarioAFields = attrs.Fields{
	LanguageID: 1, TokenType: attrs.RegEx, BalancedBrackets: false,
	FontStyle: attrs.Underline | attrs.Bold, Foreground: 101, Background: 102,
}

func TestNewDecodes(t *testing.T) {
	assertFields(t, scenarioA(), scenarioAFields)
}

func TestSetOnZeroMatchesNew(t *testing.T) {
	got := attrs.Set(0, 1, attrs.OptionalRegEx, attrs.BoolFalse, attrs.Underline|attrs.Bold, 101, 102)
	if got != scenarioA() {
		t.Fatalf("Set(0, ...) = %s, want %s", got.BinaryString(), scenarioA().BinaryString())
	}
}

func TestSetOverwritesLanguageID(t *testing.T) {
	v := attrs.Set(scenarioA(), 2, attrs.TokenTypeNotSet, attrs.BoolFalse, attrs.FontStyleNotSet, 0, 0)
	want := scenarioAFields
	want.LanguageID = 2
	assertFields(t, v, want)
}

func TestSetLanguageIDLeavesRestUnchanged(t *testing.T) {
	v := attrs.Set(scenarioA(), 2, attrs.TokenTypeNotSet, attrs.BoolNotSet, attrs.FontStyleNotSet, 0, 0)
	want := scenarioAFields
	want.LanguageID = 2
	assertFields(t, v, want)
}

func TestSetOverwritesTokenType(t *testing.T) {
	v := attrs.Set(scenarioA(), 0, attrs.OptionalComment, attrs.BoolFalse, attrs.FontStyleNotSet, 0, 0)
	want := scenarioAFields
	want.TokenType = attrs.Comment
	assertFields(t, v, want)
}

func TestSetOverwritesFontStyle(t *testing.T) {
	v := attrs.Set(scenarioA(), 0, attrs.TokenTypeNotSet, attrs.BoolFalse, attrs.FontStyleNone, 0, 0)
	want := scenarioAFields
	want.FontStyle = attrs.FontStyleNone
	assertFields(t, v, want)
}

func TestSetOverwritesStrikethrough(t *testing.T) {
	v := attrs.New(1, attrs.RegEx, false, attrs.Strikethrough, 101, 102)
	want := scenarioAFields
	want.FontStyle = attrs.Strikethrough
	assertFields(t, v, want)

	v = attrs.Set(v, 0, attrs.TokenTypeNotSet, attrs.BoolFalse, attrs.FontStyleNone, 0, 0)
	want.FontStyle = attrs.FontStyleNone
	assertFields(t, v, want)
}

func TestSetOverwritesForeground(t *testing.T) {
	v := attrs.Set(scenarioA(), 0, attrs.TokenTypeNotSet, attrs.BoolFalse, attrs.FontStyleNotSet, 5, 0)
	want := scenarioAFields
	want.Foreground = 5
	assertFields(t, v, want)
}

func TestSetOverwritesBackground(t *testing.T) {
	v := attrs.Set(scenarioA(), 0, attrs.TokenTypeNotSet, attrs.BoolFalse, attrs.FontStyleNotSet, 0, 7)
	want := scenarioAFields
	want.Background = 7
	assertFields(t, v, want)
}

func TestSetTogglesBalancedBrackets(t *testing.T) {
	v := attrs.Set(scenarioA(), 0, attrs.TokenTypeNotSet, attrs.BoolTrue, attrs.FontStyleNotSet, 0, 0)
	want := scenarioAFields
	want.BalancedBrackets = true
	assertFields(t, v, want)

	v = attrs.Set(v, 0, attrs.TokenTypeNotSet, attrs.BoolFalse, attrs.FontStyleNotSet, 0, 0)
	want.BalancedBrackets = false
	assertFields(t, v, want)
}

func TestMaxValues(t *testing.T) {
	maxTokenType := attrs.Comment | attrs.Other | attrs.RegEx | attrs.String
	maxFontStyle := attrs.Bold | attrs.Italic | attrs.Underline
	v := attrs.Set(0, 255, attrs.ToOptional(maxTokenType), attrs.BoolTrue, maxFontStyle, 511, 254)
	assertFields(t, v, attrs.Fields{
		LanguageID: 255, TokenType: attrs.RegEx, BalancedBrackets: true,
		FontStyle: maxFontStyle, Foreground: 511, Background: 254,
	})
}

func TestNoOpSetKeepsValue(t *testing.T) {
	values := []attrs.Encoded{0, 1, scenarioA(), 0xFFFFFFFF, 0x80000000, 0x00FF8000}
	for _, v := range values {
		got := attrs.Set(v, 0, attrs.TokenTypeNotSet, attrs.BoolNotSet, attrs.FontStyleNotSet, 0, 0)
		if got != v {
			t.Fatalf("no-op Set changed %#x to %#x", uint32(v), uint32(got))
		}
	}
}

func TestFieldIsolationAtExtremes(t *testing.T) {
	cases := []struct {
		name string
		v    attrs.Encoded
		want attrs.Fields
	}{
		{"languageId", attrs.New(255, attrs.Other, false, attrs.FontStyleNone, 0, 0), attrs.Fields{LanguageID: 255}},
		{"tokenType", attrs.New(0, attrs.RegEx, false, attrs.FontStyleNone, 0, 0), attrs.Fields{TokenType: attrs.RegEx}},
		{"balanced", attrs.New(0, attrs.Other, true, attrs.FontStyleNone, 0, 0), attrs.Fields{BalancedBrackets: true}},
		{"fontStyle", attrs.New(0, attrs.Other, false, 15, 0, 0), attrs.Fields{FontStyle: 15}},
		{"foreground", attrs.New(0, attrs.Other, false, attrs.FontStyleNone, 511, 0), attrs.Fields{Foreground: 511}},
		{"background", attrs.New(0, attrs.Other, false, attrs.FontStyleNone, 0, 255), attrs.Fields{Background: 255}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertFields(t, tc.v, tc.want)
		})
	}
}

func TestAllOnesDecodesFieldMaxima(t *testing.T) {
	assertFields(t, attrs.Encoded(0xFFFFFFFF), attrs.Fields{
		LanguageID: 255, TokenType: attrs.RegEx, BalancedBrackets: true,
		FontStyle: 15, Foreground: 511, Background: 255,
	})
}

func TestRawBitPositions(t *testing.T) {
	cases := []struct {
		v    attrs.Encoded
		want uint32
	}{
		{attrs.New(1, 0, false, 0, 0, 0), 1 << 0},
		{attrs.New(0, attrs.Comment, false, 0, 0, 0), 1 << 8},
		{attrs.New(0, 0, true, 0, 0, 0), 1 << 10},
		{attrs.New(0, 0, false, attrs.Italic, 0, 0), 1 << 11},
		{attrs.New(0, 0, false, 0, 1, 0), 1 << 15},
		{attrs.New(0, 0, false, 0, 0, 1), 1 << 24},
	}
	for _, tc := range cases {
		if uint32(tc.v) != tc.want {
			t.Errorf("got %#x, want %#x", uint32(tc.v), tc.want)
		}
	}
}

func TestNewTruncatesOutOfDomain(t *testing.T) {
	v := attrs.New(256+7, attrs.StandardTokenType(4|attrs.String), false, attrs.FontStyle(16|attrs.Bold), 512+3, 256+9)
	assertFields(t, v, attrs.Fields{
		LanguageID: 7, TokenType: attrs.String, FontStyle: attrs.Bold, Foreground: 3, Background: 9,
	})
}

func TestSentinelZeroCannotResetColors(t *testing.T) {
	v := attrs.Set(scenarioA(), 0, attrs.TokenTypeNotSet, attrs.BoolNotSet, attrs.FontStyleNotSet, 0, 0)
	if v.LanguageID() != 1 || v.Foreground() != 101 || v.Background() != 102 {
		t.Fatalf("zero arguments must keep fields, got %s", v)
	}
}

func TestRoundTripRandom(t *testing.T) {
	seed := uint32(0x9E3779B9)
	next := func() uint32 {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		return seed
	}
	for i := 0; i < 2000; i++ {
		f := attrs.Fields{
			LanguageID:       next() % 256,
			TokenType:        attrs.StandardTokenType(next() % 4),
			BalancedBrackets: next()%2 == 1,
			FontStyle:        attrs.FontStyle(next() % 16),
			Foreground:       next() % 512,
			Background:       next() % 256,
		}
		assertFields(t, f.Encode(), f)

		raw := attrs.Encoded(next())
		if attrs.Decode(raw).Encode() != raw {
			t.Fatalf("decode/encode of %#x is not identity", uint32(raw))
		}
	}
}
