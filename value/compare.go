package value

import (
	"cmp"
	"sort"
	"strings"
)

// kindRank maps a Kind to its precedence class. Values of different classes
// order by class; values of the same class order by kind-specific rules.
// KindInt and KindFloat share one numeric class.
func kindRank(k Kind) int {
	switch k {
	case KindNull:
		return 0
	case KindBool:
		return 1
	case KindInt, KindFloat:
		return 2
	case KindString:
		return 3
	case KindDate:
		return 4
	case KindLink:
		return 5
	case KindArray:
		return 6
	case KindObject:
		return 7
	default:
		return -1
	}
}

// Compare is a three-way comparison implementing the total order over
// values: null first, then booleans, numbers, strings, dates, links,
// arrays, objects. Every pair of values is comparable; incomparable kinds
// never panic, they order by kind precedence.
func Compare(a, b Value) int {
	ra, rb := kindRank(a.Kind), kindRank(b.Kind)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}

	switch {
	case a.Kind == KindNull:
		return 0

	case a.Kind == KindBool:
		if a.B == b.B {
			return 0
		}
		if !a.B {
			return -1
		}
		return 1

	case isNumber(a):
		// Prefer exact int compare when possible.
		if a.Kind == KindInt && b.Kind == KindInt {
			switch {
			case a.I64 < b.I64:
				return -1
			case a.I64 > b.I64:
				return 1
			default:
				return 0
			}
		}
		// cmp.Compare keeps the order total when a NaN slips in:
		// NaN sorts before every other number.
		return cmp.Compare(asFloat64(a), asFloat64(b))

	case a.Kind == KindString:
		return strings.Compare(a.s.Value(), b.s.Value())

	case a.Kind == KindDate:
		return a.T.Compare(b.T)

	case a.Kind == KindLink:
		if c := strings.Compare(a.L.Path, b.L.Path); c != 0 {
			return c
		}
		return strings.Compare(a.L.Display, b.L.Display)

	case a.Kind == KindArray:
		return compareArrays(a.A, b.A)

	case a.Kind == KindObject:
		return compareObjects(a.O, b.O)

	default:
		return 0
	}
}

// Equal reports whether two values are equal under the total order.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

// compareArrays orders element-wise, then by length.
func compareArrays(a, b []Value) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// compareObjects orders by sorted (key, value) pairs, then by length.
func compareObjects(a, b map[string]Value) int {
	ka := sortedKeys(a)
	kb := sortedKeys(b)
	n := min(len(ka), len(kb))
	for i := 0; i < n; i++ {
		if c := strings.Compare(ka[i], kb[i]); c != 0 {
			return c
		}
		if c := Compare(a[ka[i]], b[kb[i]]); c != 0 {
			return c
		}
	}
	switch {
	case len(ka) < len(kb):
		return -1
	case len(ka) > len(kb):
		return 1
	default:
		return 0
	}
}

func sortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func isNumber(v Value) bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

func asFloat64(v Value) float64 {
	switch v.Kind {
	case KindInt:
		return float64(v.I64)
	case KindFloat:
		return v.F64
	default:
		return 0
	}
}
