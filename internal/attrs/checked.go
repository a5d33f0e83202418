package attrs

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// ErrOutOfRange is matched by every RangeError.
var ErrOutOfRange = errors.New("attribute value out of range")

// RangeError reports a field value that does not fit its bit width.
type RangeError struct {
	Field string
	Value int64
	Max   uint32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: value %d out of range [0, %d]", e.Field, e.Value, e.Max)
}

// Unwrap lets errors.Is match ErrOutOfRange.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// Validate reports the first field of f that New would truncate.
func (f Fields) Validate() error {
	values := [...]struct {
		idx int
		v   int64
	}{
		{FieldLanguageID, int64(f.LanguageID)},
		{FieldTokenType, int64(f.TokenType)},
		{FieldFontStyle, int64(f.FontStyle)},
		{FieldForeground, int64(f.Foreground)},
		{FieldBackground, int64(f.Background)},
	}
	for _, fv := range values {
		if err := checkField(fv.idx, fv.v); err != nil {
			return err
		}
	}
	return nil
}

// checkField rejects v when it does not fit Layout[idx].
func checkField(idx int, v int64) error {
	field := Layout[idx]
	if v < 0 || v > int64(field.Max()) {
		return &RangeError{Field: field.Name, Value: v, Max: field.Max()}
	}
	return nil
}

// Raw carries unchecked field values, typically straight from flags or
// config files.
type Raw struct {
	LanguageID       int
	TokenType        int
	BalancedBrackets bool
	FontStyle        int
	Foreground       int
	Background       int
}

// Fields converts r, failing on negative or oversized values.
func (r Raw) Fields() (Fields, error) {
	lang, err := convField(FieldLanguageID, r.LanguageID)
	if err != nil {
		return Fields{}, err
	}
	tt, err := convField(FieldTokenType, r.TokenType)
	if err != nil {
		return Fields{}, err
	}
	fs, err := convField(FieldFontStyle, r.FontStyle)
	if err != nil {
		return Fields{}, err
	}
	fg, err := convField(FieldForeground, r.Foreground)
	if err != nil {
		return Fields{}, err
	}
	bg, err := convField(FieldBackground, r.Background)
	if err != nil {
		return Fields{}, err
	}
	return Fields{
		LanguageID:       lang,
		TokenType:        StandardTokenType(tt),
		BalancedBrackets: r.BalancedBrackets,
		FontStyle:        FontStyle(fs),
		Foreground:       fg,
		Background:       bg,
	}, nil
}

func convField(idx int, v int) (uint32, error) {
	if err := checkField(idx, int64(v)); err != nil {
		return 0, err
	}
	return safecast.Conv[uint32](v)
}

// NewChecked is New for callers that want out-of-range inputs rejected
// instead of truncated.
func NewChecked(r Raw) (Encoded, error) {
	f, err := r.Fields()
	if err != nil {
		return 0, err
	}
	return f.Encode(), nil
}
