package token

import (
	"errors"
	"fmt"
	"sort"

	"fortio.org/safecast"

	"tokattr/internal/attrs"
)

var (
	// ErrOddLength reports a binary line whose length is not a multiple of two.
	ErrOddLength = errors.New("binary token line has odd length")
	// ErrUnordered reports start indexes that do not strictly increase.
	ErrUnordered = errors.New("token start indexes are not increasing")
)

// Token is one entry of a tokenized line.
type Token struct {
	StartIndex uint32
	Attrs      attrs.Encoded
}

// Line is the ordered token list of one source line.
type Line []Token

// Validate checks that start indexes strictly increase.
func (l Line) Validate() error {
	for i := 1; i < len(l); i++ {
		if l[i].StartIndex <= l[i-1].StartIndex {
			return fmt.Errorf("token %d starts at %d after %d: %w", i, l[i].StartIndex, l[i-1].StartIndex, ErrUnordered)
		}
	}
	return nil
}

// At returns the attributes covering the character at offset.
func (l Line) At(offset int) (attrs.Encoded, bool) {
	off, err := safecast.Conv[uint32](offset)
	if err != nil || len(l) == 0 || off < l[0].StartIndex {
		return 0, false
	}
	// первый токен, начинающийся после offset
	i := sort.Search(len(l), func(i int) bool { return l[i].StartIndex > off })
	return l[i-1].Attrs, true
}

// EncodeLine flattens l into its binary form.
func EncodeLine(l Line) []uint32 {
	out := make([]uint32, 0, 2*len(l))
	for _, tok := range l {
		out = append(out, tok.StartIndex, uint32(tok.Attrs))
	}
	return out
}

// DecodeLine converts a binary line back into tokens.
func DecodeLine(raw []uint32) (Line, error) {
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("decode line of %d words: %w", len(raw), ErrOddLength)
	}
	l := make(Line, 0, len(raw)/2)
	for i := 0; i < len(raw); i += 2 {
		l = append(l, Token{StartIndex: raw[i], Attrs: attrs.Encoded(raw[i+1])})
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}
