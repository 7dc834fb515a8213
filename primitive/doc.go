// Package primitive classifies Go scalar types into kinds and converts values
// between them at runtime.
//
// Conversions are grouped into categories (CategoryEnum) so callers can opt in
// to exactly the lossy or textual conversions they accept:
//   - number widening and checked narrowing
//   - text, bool, time and duration representations
//   - named string/int enums, fmt.Stringer and encoding.TextUnmarshaler types
//   - slice to array fitting or truncation
//
// Slices, arrays, maps and pointers are converted element by element.
package primitive
