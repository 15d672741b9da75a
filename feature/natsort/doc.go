// Package natsort orders strings the way people read versioned filenames:
// digit runs compare by numeric value and the text between them compares as
// plain text, so frame_2 sorts ahead of frame_10.
//
// # Sort Keys
//
// A string is tokenized into alternating text and digit-run tokens with
// empty text tokens padding the boundaries ("file1" becomes "file", "1",
// ""). The alternation means two keys always meet a text token against a
// text token and a digit run against a digit run at the same index, which
// keeps comparison total and deterministic. Digit runs are compared with
// leading zeros stripped, then by length, then lexicographically, so values
// of any magnitude compare correctly without integer conversion.
//
// # Guarantees
//
//   - Purity: tokenizing the same string always yields the same tokens.
//   - Stability: Sort and SortPaths are stable, so inputs with equal keys
//     ("file007" and "file7") keep their relative order.
//   - Only ASCII '0'-'9' count as digits.
package natsort
