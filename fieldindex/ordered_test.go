package fieldindex

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vaultindex/value"
)

func collect(seq func(yield func(string) bool)) []string {
	var out []string
	seq(func(id string) bool {
		out = append(out, id)
		return true
	})
	return out
}

func TestOrderedIndex_Scenario(t *testing.T) {
	ix := NewOrdered(NewDictionary())
	ix.Add("p1", value.Int(5))
	ix.Add("p2", value.Int(3))
	ix.Add("p3", value.Int(5))

	asc, ok := ix.Ascending()
	require.True(t, ok)
	got := collect(asc)
	require.Equal(t, []string{"p2", "p1", "p3"}, got)

	// Repeated calls see the same tie order.
	require.Equal(t, got, collect(asc))

	desc, ok := ix.Descending()
	require.True(t, ok)
	gotDesc := collect(desc)
	slices.Reverse(gotDesc)
	require.Equal(t, got, gotDesc, "descending must be the exact reverse of ascending")

	eq, ok := ix.Equals(value.Int(5))
	require.True(t, ok)
	require.ElementsMatch(t, []string{"p1", "p3"}, eq.Slice())

	eq3, ok := ix.Equals(value.Int(3))
	require.True(t, ok)
	require.Equal(t, []string{"p2"}, eq3.Slice())
}

func TestOrderedIndex_NaNKeepsNumericOrder(t *testing.T) {
	ix := NewOrdered(NewDictionary())
	ix.Add("two", value.Float(2))
	ix.Add("nan", value.Float(math.NaN()))
	ix.Add("three", value.Int(3))
	ix.Add("five", value.Float(5))

	asc, ok := ix.Ascending()
	require.True(t, ok)
	require.Equal(t, []string{"nan", "two", "three", "five"}, collect(asc))

	desc, ok := ix.Descending()
	require.True(t, ok)
	require.Equal(t, []string{"five", "three", "two", "nan"}, collect(desc))

	// NaN lives in its own bucket and can be removed cleanly.
	eq, ok := ix.Equals(value.Float(math.NaN()))
	require.True(t, ok)
	require.Equal(t, []string{"nan"}, eq.Slice())

	ix.Delete("nan", value.Float(math.NaN()))
	asc, _ = ix.Ascending()
	require.Equal(t, []string{"two", "three", "five"}, collect(asc))
}

func TestOrderedIndex_AllTracksNetAdds(t *testing.T) {
	ix := NewOrdered(NewDictionary())

	ix.Add("a", value.String("x"))
	ix.Add("b", value.String("y"))
	ix.Add("c", value.String("x"))
	ix.Delete("b", value.String("y"))
	ix.Add("b", value.String("z"))
	ix.Delete("c", value.String("x"))

	require.ElementsMatch(t, []string{"a", "b"}, ix.All().Slice())
	require.True(t, ix.All().Contains("a"))
	require.False(t, ix.All().Contains("c"))
}

func TestOrderedIndex_AddIdempotent(t *testing.T) {
	ix := NewOrdered(NewDictionary())
	ix.Add("a", value.Int(1))
	ix.Add("a", value.Int(1))

	eq, _ := ix.Equals(value.Int(1))
	require.Equal(t, 1, eq.Len())
	require.Equal(t, 1, ix.All().Len())
}

func TestOrderedIndex_DeleteIdempotent(t *testing.T) {
	ix := NewOrdered(NewDictionary())
	ix.Add("a", value.Int(1))
	ix.Add("b", value.Int(1))

	ix.Delete("a", value.Int(1))
	ix.Delete("a", value.Int(1)) // second delete is a no-op

	require.Equal(t, []string{"b"}, ix.All().Slice())

	// Deleting a pair that was never added changes nothing, including a
	// value the document does not hold.
	ix.Delete("b", value.Int(99))
	require.Equal(t, []string{"b"}, ix.All().Slice())
	eq, _ := ix.Equals(value.Int(1))
	require.Equal(t, []string{"b"}, eq.Slice())
}

func TestOrderedIndex_RoundTrip(t *testing.T) {
	ix := NewOrdered(NewDictionary())
	v := value.String("tag")

	ix.Add("a", v)
	ix.Delete("a", v)

	eq, ok := ix.Equals(v)
	require.True(t, ok)
	require.True(t, eq.IsEmpty())
	require.False(t, ix.All().Contains("a"))
}

func TestOrderedIndex_BucketCleanup(t *testing.T) {
	ix := NewOrdered(NewDictionary())
	ix.Add("a", value.Int(1))
	ix.Add("b", value.Int(2))
	ix.Add("c", value.Int(3))

	ix.Delete("b", value.Int(2))

	require.Equal(t, 2, ix.Values(), "empty bucket must be dropped")

	eq, ok := ix.Equals(value.Int(2))
	require.True(t, ok)
	require.True(t, eq.IsEmpty())

	asc, _ := ix.Ascending()
	require.Equal(t, []string{"a", "c"}, collect(asc))
	desc, _ := ix.Descending()
	require.Equal(t, []string{"c", "a"}, collect(desc))
}

func TestOrderedIndex_MixedKindOrdering(t *testing.T) {
	ix := NewOrdered(NewDictionary())
	ix.Add("str", value.String("alpha"))
	ix.Add("null", value.Null())
	ix.Add("num", value.Int(7))
	ix.Add("flag", value.Bool(true))

	asc, _ := ix.Ascending()
	require.Equal(t, []string{"null", "flag", "num", "str"}, collect(asc))
}

func TestOrderedIndex_EqualNumbersShareOrderNotBucket(t *testing.T) {
	ix := NewOrdered(NewDictionary())
	ix.Add("i", value.Int(5))
	ix.Add("f", value.Float(5))

	// Exact-value buckets stay distinct.
	eqInt, _ := ix.Equals(value.Int(5))
	require.Equal(t, []string{"i"}, eqInt.Slice())
	eqFloat, _ := ix.Equals(value.Float(5))
	require.Equal(t, []string{"f"}, eqFloat.Slice())

	// Both appear once in traversal, adjacent, in a stable order.
	asc, _ := ix.Ascending()
	got := collect(asc)
	require.Len(t, got, 2)
	require.Equal(t, got, collect(asc))
}

func TestOrderedIndex_ValueChangeIsDeleteThenAdd(t *testing.T) {
	ix := NewOrdered(NewDictionary())
	ix.Add("a", value.Int(1))

	// Caller re-indexes by deleting the old pair before adding the new.
	ix.Delete("a", value.Int(1))
	ix.Add("a", value.Int(2))

	eqOld, _ := ix.Equals(value.Int(1))
	require.True(t, eqOld.IsEmpty())
	eqNew, _ := ix.Equals(value.Int(2))
	require.Equal(t, []string{"a"}, eqNew.Slice())
	require.Equal(t, 1, ix.All().Len())
}

func TestOrderedIndex_LazyTraversalPrefix(t *testing.T) {
	ix := NewOrdered(NewDictionary())
	for _, id := range []string{"a", "b", "c", "d"} {
		ix.Add(id, value.String(id))
	}

	asc, _ := ix.Ascending()
	var first string
	asc(func(id string) bool {
		first = id
		return false // stop after one element
	})
	require.Equal(t, "a", first)
}

func TestOrderedIndex_ReplayProperty(t *testing.T) {
	type op struct {
		del bool
		id  string
		v   value.Value
	}
	ops := []op{
		{false, "a", value.Int(1)},
		{false, "b", value.Int(2)},
		{false, "c", value.Int(1)},
		{true, "a", value.Int(1)},
		{false, "a", value.Int(3)},
		{true, "b", value.Int(2)},
		{true, "b", value.Int(2)},
		{false, "d", value.Int(2)},
	}

	ix := NewOrdered(NewDictionary())
	want := map[string]value.Value{}
	for _, o := range ops {
		if o.del {
			ix.Delete(o.id, o.v)
			if cur, ok := want[o.id]; ok && value.Equal(cur, o.v) {
				delete(want, o.id)
			}
		} else {
			ix.Add(o.id, o.v)
			want[o.id] = o.v
		}
	}

	require.Equal(t, len(want), ix.All().Len())
	for id, v := range want {
		require.True(t, ix.All().Contains(id))
		eq, _ := ix.Equals(v)
		require.True(t, eq.Contains(id), "id %q should be in bucket for its last added value", id)
	}
}
