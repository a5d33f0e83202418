package attrs

// StandardTokenType is the coarse lexical class stored in bits 8-9.
type StandardTokenType uint8

const (
	// Other is any token that is not a comment, string or regex.
	Other StandardTokenType = 0
	// Comment marks comment tokens.
	Comment StandardTokenType = 1
	// String marks string literal tokens.
	String StandardTokenType = 2
	// RegEx marks regular expression literal tokens.
	RegEx StandardTokenType = 3
)

// OptionalStandardTokenType mirrors StandardTokenType and adds TokenTypeNotSet.
// The first four values must stay equal to the StandardTokenType values.
type OptionalStandardTokenType uint8

const (
	OptionalOther   OptionalStandardTokenType = OptionalStandardTokenType(Other)
	OptionalComment OptionalStandardTokenType = OptionalStandardTokenType(Comment)
	OptionalString  OptionalStandardTokenType = OptionalStandardTokenType(String)
	OptionalRegEx   OptionalStandardTokenType = OptionalStandardTokenType(RegEx)
	// TokenTypeNotSet leaves the token type untouched in Set.
	TokenTypeNotSet OptionalStandardTokenType = 8
)

// ToOptional lifts a token type into the optional enumeration.
func ToOptional(t StandardTokenType) OptionalStandardTokenType {
	return OptionalStandardTokenType(t)
}

// FontStyle is a bitmask of style flags stored in bits 11-14.
type FontStyle int8

const (
	// FontStyleNotSet leaves the font style untouched in Set.
	FontStyleNotSet FontStyle = -1
	FontStyleNone   FontStyle = 0
	Italic          FontStyle = 1
	Bold            FontStyle = 2
	Underline       FontStyle = 4
	Strikethrough   FontStyle = 8
)

// Has reports whether every flag in flag is set.
func (s FontStyle) Has(flag FontStyle) bool {
	if s == FontStyleNotSet {
		return false
	}
	return s&flag == flag
}

// OptionalBool is a tri-state used for the balanced brackets argument of Set.
// The zero value is BoolNotSet.
type OptionalBool uint8

const (
	BoolNotSet OptionalBool = iota
	BoolFalse
	BoolTrue
)

// OptionalBoolOf converts b to BoolTrue or BoolFalse.
func OptionalBoolOf(b bool) OptionalBool {
	if b {
		return BoolTrue
	}
	return BoolFalse
}
