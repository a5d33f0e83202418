package attrs

// LayoutVersion identifies the bit layout below. Anything that stores raw
// Encoded values must record it and refuse values written under another one.
const LayoutVersion uint16 = 1

const (
	languageIDMask       = 0b00000000_00000000_00000000_11111111
	tokenTypeMask        = 0b00000000_00000000_00000011_00000000
	balancedBracketsMask = 0b00000000_00000000_00000100_00000000
	fontStyleMask        = 0b00000000_00000000_01111000_00000000
	foregroundMask       = 0b00000000_11111111_10000000_00000000
	backgroundMask       = 0b11111111_00000000_00000000_00000000

	languageIDOffset       = 0
	tokenTypeOffset        = 8
	balancedBracketsOffset = 10
	fontStyleOffset        = 11
	foregroundOffset       = 15
	backgroundOffset       = 24
)

// Field describes where one attribute lives inside an Encoded value.
type Field struct {
	Name   string
	Offset uint
	Width  uint
	Mask   uint32
}

// Max returns the largest value the field can hold.
func (f Field) Max() uint32 { return f.Mask >> f.Offset }

// Extract returns the field value of e.
func (f Field) Extract(e Encoded) uint32 { return (uint32(e) & f.Mask) >> f.Offset }

// Layout lists every field from the least significant bits up.
var Layout = [...]Field{
	{Name: "languageId", Offset: languageIDOffset, Width: 8, Mask: languageIDMask},
	{Name: "tokenType", Offset: tokenTypeOffset, Width: 2, Mask: tokenTypeMask},
	{Name: "balancedBrackets", Offset: balancedBracketsOffset, Width: 1, Mask: balancedBracketsMask},
	{Name: "fontStyle", Offset: fontStyleOffset, Width: 4, Mask: fontStyleMask},
	{Name: "foreground", Offset: foregroundOffset, Width: 9, Mask: foregroundMask},
	{Name: "background", Offset: backgroundOffset, Width: 8, Mask: backgroundMask},
}

// Field indexes into Layout.
const (
	FieldLanguageID = iota
	FieldTokenType
	FieldBalancedBrackets
	FieldFontStyle
	FieldForeground
	FieldBackground
)

const (
	MaxLanguageID = languageIDMask >> languageIDOffset
	MaxForeground = foregroundMask >> foregroundOffset
	MaxBackground = backgroundMask >> backgroundOffset
	MaxFontStyle  = fontStyleMask >> fontStyleOffset
	MaxTokenType  = tokenTypeMask >> tokenTypeOffset
)
