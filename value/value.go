package value

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unique"
)

// Kind identifies the concrete type stored in a Value.
//
// The declaration order is the kind precedence used by Compare: a value of
// a lower kind sorts before any value of a higher kind.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNull represents a null value.
	KindNull
	// KindBool represents a boolean value.
	KindBool
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindDate represents a point in time.
	KindDate
	// KindLink represents a link to another vault entity.
	KindLink
	// KindArray represents an array value.
	KindArray
	// KindObject represents an object (string-keyed map) value.
	KindObject
)

// Link is the payload of a KindLink value: a target path inside the vault
// plus an optional display title.
type Link struct {
	Path    string `json:"path"`
	Display string `json:"display,omitempty"`
}

// Value is a small typed value attached to a document field.
//
// The representation is designed to make indexing fast and predictable:
// no reflection and no fmt-based stringification.
type Value struct {
	Kind Kind                  `json:"k"`
	I64  int64                 `json:"i,omitempty"`
	F64  float64               `json:"f,omitempty"`
	s    unique.Handle[string] `json:"-"` // Private interned string
	B    bool                  `json:"b,omitempty"`
	T    time.Time             `json:"t,omitzero"`
	L    Link                  `json:"l,omitzero"`
	A    []Value               `json:"a,omitempty"`
	O    map[string]Value      `json:"o,omitempty"`
}

// StringValue returns the string value if Kind is KindString, otherwise
// the empty string.
func (v Value) StringValue() string {
	if v.Kind == KindString {
		return v.s.Value()
	}
	return ""
}

// Key returns a stable string representation for use as a bucket key.
//
// It is intended for internal indexing (value buckets) and must remain
// stable across versions.
func (v Value) Key() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.B {
			return "b:1"
		}
		return "b:0"
	case KindInt:
		return "i:" + strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return "f:" + strconv.FormatUint(math.Float64bits(v.F64), 16)
	case KindString:
		return "s:" + v.s.Value()
	case KindDate:
		return "d:" + strconv.FormatInt(v.T.UnixNano(), 10)
	case KindLink:
		return "l:" + v.L.Path + "\x1f" + v.L.Display
	case KindArray:
		if len(v.A) == 0 {
			return "a:"
		}
		parts := make([]string, len(v.A))
		for i := range v.A {
			parts[i] = v.A[i].Key()
		}
		return "a:" + strings.Join(parts, "\x1f")
	case KindObject:
		if len(v.O) == 0 {
			return "o:"
		}
		keys := make([]string, 0, len(v.O))
		for k := range v.O {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + "=" + v.O[k].Key()
		}
		return "o:" + strings.Join(parts, "\x1f")
	default:
		return "invalid"
	}
}

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.F64, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.s.Value(), true
}

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// AsTime returns the time value if Kind is KindDate.
func (v Value) AsTime() (time.Time, bool) {
	if v.Kind != KindDate {
		return time.Time{}, false
	}
	return v.T, true
}

// AsLink returns the link payload if Kind is KindLink.
func (v Value) AsLink() (Link, bool) {
	if v.Kind != KindLink {
		return Link{}, false
	}
	return v.L, true
}

// AsArray returns the array value if Kind is KindArray.
func (v Value) AsArray() ([]Value, bool) {
	if v.Kind != KindArray {
		return nil, false
	}
	return v.A, true
}

// AsObject returns the object value if Kind is KindObject.
func (v Value) AsObject() (map[string]Value, bool) {
	if v.Kind != KindObject {
		return nil, false
	}
	return v.O, true
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// Int returns an int64 Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, s: unique.Make(v)} }

// Date returns a point-in-time Value.
func Date(t time.Time) Value { return Value{Kind: KindDate, T: t} }

// LinkTo returns a link Value targeting the given vault path.
func LinkTo(path string) Value { return Value{Kind: KindLink, L: Link{Path: path}} }

// TitledLink returns a link Value with an explicit display title.
func TitledLink(path, display string) Value {
	return Value{Kind: KindLink, L: Link{Path: path, Display: display}}
}

// Array returns an array Value.
func Array(v []Value) Value { return Value{Kind: KindArray, A: v} }

// Object returns an object Value.
func Object(v map[string]Value) Value { return Value{Kind: KindObject, O: v} }
