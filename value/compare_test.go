package value

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_KindPrecedence(t *testing.T) {
	ordered := []Value{
		Null(),
		Bool(true),
		Int(-100),
		String(""),
		Date(time.Unix(0, 0)),
		LinkTo("a.md"),
		Array(nil),
		Object(nil),
	}

	for i := range ordered {
		for j := range ordered {
			c := Compare(ordered[i], ordered[j])
			switch {
			case i < j:
				assert.Negative(t, c, "expected %v < %v", ordered[i], ordered[j])
			case i > j:
				assert.Positive(t, c, "expected %v > %v", ordered[i], ordered[j])
			default:
				assert.Zero(t, c)
			}
		}
	}
}

func TestCompare_Numbers(t *testing.T) {
	require.Negative(t, Compare(Int(1), Int(2)))
	require.Positive(t, Compare(Int(2), Int(1)))
	require.Zero(t, Compare(Int(5), Int(5)))

	// Ints and floats compare numerically across kinds.
	require.Zero(t, Compare(Int(5), Float(5.0)))
	require.Negative(t, Compare(Float(4.5), Int(5)))
	require.Positive(t, Compare(Int(5), Float(4.5)))
}

func TestCompare_NaNIsOrdered(t *testing.T) {
	nan := Float(math.NaN())

	// NaN sorts before every other number, never equal to one.
	require.Zero(t, Compare(nan, Float(math.NaN())))
	require.Negative(t, Compare(nan, Float(math.Inf(-1))))
	require.Negative(t, Compare(nan, Int(-100)))
	require.Negative(t, Compare(nan, Float(0)))
	require.Positive(t, Compare(Int(3), nan))
	require.Positive(t, Compare(Float(2), nan))

	// It still ranks above nulls and booleans.
	require.Positive(t, Compare(nan, Null()))
	require.Positive(t, Compare(nan, Bool(true)))
}

func TestCompare_Strings(t *testing.T) {
	require.Negative(t, Compare(String("alpha"), String("beta")))
	require.Zero(t, Compare(String("x"), String("x")))
	// Case-sensitive byte order: uppercase sorts before lowercase.
	require.Negative(t, Compare(String("Zebra"), String("ant")))
}

func TestCompare_Bools(t *testing.T) {
	require.Negative(t, Compare(Bool(false), Bool(true)))
	require.Zero(t, Compare(Bool(true), Bool(true)))
}

func TestCompare_Dates(t *testing.T) {
	early := Date(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	late := Date(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	require.Negative(t, Compare(early, late))
	require.Zero(t, Compare(early, early))

	// Instants compare regardless of zone.
	zoned := Date(time.Date(2024, 1, 1, 1, 0, 0, 0, time.FixedZone("X", 3600)))
	require.Zero(t, Compare(early, zoned))
}

func TestCompare_Links(t *testing.T) {
	require.Negative(t, Compare(LinkTo("a.md"), LinkTo("b.md")))
	require.Zero(t, Compare(LinkTo("a.md"), LinkTo("a.md")))
	require.Negative(t, Compare(LinkTo("a.md"), TitledLink("a.md", "A")))
}

func TestCompare_Arrays(t *testing.T) {
	a := Array([]Value{Int(1), Int(2)})
	b := Array([]Value{Int(1), Int(3)})
	c := Array([]Value{Int(1), Int(2), Int(0)})

	require.Negative(t, Compare(a, b))
	// Element-wise first, then length.
	require.Negative(t, Compare(a, c))
	require.Zero(t, Compare(a, Array([]Value{Int(1), Int(2)})))
}

func TestCompare_Objects(t *testing.T) {
	a := Object(map[string]Value{"x": Int(1)})
	b := Object(map[string]Value{"x": Int(2)})
	c := Object(map[string]Value{"x": Int(1), "y": Int(0)})

	require.Negative(t, Compare(a, b))
	require.Negative(t, Compare(a, c))
	require.Zero(t, Compare(a, Object(map[string]Value{"x": Int(1)})))
}

func TestEqual(t *testing.T) {
	require.True(t, Equal(Int(5), Float(5)))
	require.False(t, Equal(Int(5), String("5")))
	require.True(t, Equal(Null(), Null()))
}
