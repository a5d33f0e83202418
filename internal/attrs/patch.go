package attrs

// Option is a value that may be absent.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a present option holding v.
func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

// None returns an absent option.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.ok }

// Patch selects the fields Apply replaces. Absent fields are kept.
//
// Unlike Set, a present zero value is written, so a Patch can reset the
// language id or a color to 0. Callers that must stay bit-compatible with
// sentinel-based callers should build patches with PatchFromSet.
type Patch struct {
	LanguageID       Option[uint32]
	TokenType        Option[StandardTokenType]
	BalancedBrackets Option[bool]
	FontStyle        Option[FontStyle]
	Foreground       Option[uint32]
	Background       Option[uint32]
}

// IsEmpty reports whether p leaves every field untouched.
func (p Patch) IsEmpty() bool {
	return !p.LanguageID.ok && !p.TokenType.ok && !p.BalancedBrackets.ok &&
		!p.FontStyle.ok && !p.Foreground.ok && !p.Background.ok
}

// PatchFromSet translates the sentinel arguments of Set into a Patch.
func PatchFromSet(languageID uint32, tokenType OptionalStandardTokenType, balanced OptionalBool, fontStyle FontStyle, foreground, background uint32) Patch {
	var p Patch
	if languageID != 0 {
		p.LanguageID = Some(languageID)
	}
	if tokenType != TokenTypeNotSet {
		p.TokenType = Some(StandardTokenType(tokenType))
	}
	if balanced != BoolNotSet {
		p.BalancedBrackets = Some(balanced == BoolTrue)
	}
	if fontStyle != FontStyleNotSet {
		p.FontStyle = Some(fontStyle)
	}
	if foreground != 0 {
		p.Foreground = Some(foreground)
	}
	if background != 0 {
		p.Background = Some(background)
	}
	return p
}

// Apply decodes e, replaces the fields present in p and packs the result
// again with New.
func (e Encoded) Apply(p Patch) Encoded {
	f := Decode(e)
	if v, ok := p.LanguageID.Get(); ok {
		f.LanguageID = v
	}
	if v, ok := p.TokenType.Get(); ok {
		f.TokenType = v
	}
	if v, ok := p.BalancedBrackets.Get(); ok {
		f.BalancedBrackets = v
	}
	if v, ok := p.FontStyle.Get(); ok {
		f.FontStyle = v
	}
	if v, ok := p.Foreground.Get(); ok {
		f.Foreground = v
	}
	if v, ok := p.Background.Get(); ok {
		f.Background = v
	}
	return f.Encode()
}
