package attrs

// Encoded is the packed attribute set of one token. See the package doc for
// the bit layout.
type Encoded uint32

// LanguageID returns the language id stored in bits 0-7.
func (e Encoded) LanguageID() uint32 {
	return (uint32(e) & languageIDMask) >> languageIDOffset
}

// TokenType returns the token type stored in bits 8-9.
func (e Encoded) TokenType() StandardTokenType {
	return StandardTokenType((uint32(e) & tokenTypeMask) >> tokenTypeOffset)
}

// BalancedBrackets reports whether bit 10 is set.
func (e Encoded) BalancedBrackets() bool {
	return uint32(e)&balancedBracketsMask != 0
}

// FontStyle returns the font style flags stored in bits 11-14.
func (e Encoded) FontStyle() FontStyle {
	return FontStyle((uint32(e) & fontStyleMask) >> fontStyleOffset)
}

// Foreground returns the foreground palette index stored in bits 15-23.
func (e Encoded) Foreground() uint32 {
	return (uint32(e) & foregroundMask) >> foregroundOffset
}

// Background returns the background palette index stored in bits 24-31.
func (e Encoded) Background() uint32 {
	return (uint32(e) & backgroundMask) >> backgroundOffset
}

// New packs all six fields. Each input is truncated to its field width.
func New(languageID uint32, tokenType StandardTokenType, balanced bool, fontStyle FontStyle, foreground, background uint32) Encoded {
	var balancedBit uint32
	if balanced {
		balancedBit = 1
	}
	return Encoded(
		((languageID << languageIDOffset) & languageIDMask) |
			((uint32(tokenType) << tokenTypeOffset) & tokenTypeMask) |
			((balancedBit << balancedBracketsOffset) & balancedBracketsMask) |
			((uint32(fontStyle) << fontStyleOffset) & fontStyleMask) |
			((foreground << foregroundOffset) & foregroundMask) |
			((background << backgroundOffset) & backgroundMask),
	)
}

// Set returns e with the given fields replaced. An argument equal to its
// sentinel keeps the current field:
//   - languageID, foreground, background: 0
//   - tokenType: TokenTypeNotSet
//   - balanced: BoolNotSet
//   - fontStyle: FontStyleNotSet
//
// Because of this, language id and both colors can only be brought back to 0
// by New or by Apply.
func Set(e Encoded, languageID uint32, tokenType OptionalStandardTokenType, balanced OptionalBool, fontStyle FontStyle, foreground, background uint32) Encoded {
	return e.Apply(PatchFromSet(languageID, tokenType, balanced, fontStyle, foreground, background))
}
