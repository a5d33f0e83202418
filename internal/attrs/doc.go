// Package attrs packs per-token rendering attributes into a single uint32.
// Invariants:
//   - Fields never overlap; bit 0 is the least significant bit.
//     LLLL LLLL = language id (bits 0-7)
//     TT        = token type (bits 8-9)
//     B         = balanced brackets (bit 10)
//     FFFF      = font style (bits 11-14)
//     f x9      = foreground palette index (bits 15-23)
//     b x8      = background palette index (bits 24-31)
//   - Decoding masks then shifts right by the field offset. The value is
//     always unsigned.
//   - Construction truncates every input to its field width. It never fails.
//   - Set keeps the historic sentinels: 0 for language id, foreground and
//     background, TokenTypeNotSet, BoolNotSet and FontStyleNotSet.
//     Apply takes explicit options and can write zero values.
//   - The layout is a wire format. Changing it requires bumping LayoutVersion.
package attrs
