// Package match resolves builder field names against Go struct fields.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - IndexStruct: indexes the settable fields of a struct type by tag and name
//   - Suggest: ranks known names close to a misspelled one
package match
