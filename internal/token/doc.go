// Package token handles tokenized lines in the binary form the tokenizer hands
// to renderers.
// Invariants:
//   - A binary line is a []uint32 of even length: startIndex, attributes,
//     startIndex, attributes, ...
//   - Start indexes are strictly increasing. A token covers its start index up
//     to the next token's start index (or the end of the line).
//   - Attributes are attrs.Encoded values and are never reinterpreted here.
package token
