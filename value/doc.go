// Package value defines the typed field values attached to vault documents
// and their total order.
//
// # Value Types
//
// Field values can be:
//
//   - Null: value.Null()
//   - Bool: value.Bool(true)
//   - Int: value.Int(2024)
//   - Float: value.Float(3.14)
//   - String: value.String("project")
//   - Date: value.Date(t)
//   - Link: value.LinkTo("notes/roadmap.md")
//   - Array: value.Array([]value.Value{...})
//   - Object: value.Object(map[string]value.Value{...})
//
// # Ordering
//
// Compare implements a total order used by the ordered field index: null
// sorts first, then booleans, numbers (ints and floats compared
// numerically), strings (lexicographic, case-sensitive), dates (by
// instant), links (by path, then display), and finally arrays and objects
// (element-wise, then by length). Every pair of values is comparable;
// mixed kinds order by this fixed precedence and never fail.
package value
