package datastruct_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.llib.dev/collkit/pkg/compare"
	"go.llib.dev/collkit/pkg/datastruct"
	"go.llib.dev/collkit/pkg/iterx"
)

func ExampleArrayOf() {
	arr := datastruct.ArrayOf(1, 2, 3)
	arr.Append(4)
	arr.ToSlice() // []int{1, 2, 3, 4}
}

func ExampleArrayFrom() {
	itr, _ := iterx.Range(1, 3, 1)
	arr := datastruct.ArrayFrom(itr)
	arr.ToSlice() // []int{1, 2, 3}
}

func TestArray(t *testing.T) {
	t.Run("zero value is an empty usable array", func(t *testing.T) {
		var arr datastruct.Array[string]
		require.Equal(t, 0, arr.Len())
		arr.Append("foo")
		require.Equal(t, []string{"foo"}, arr.ToSlice())
	})

	t.Run("Append keeps insertion order", func(t *testing.T) {
		arr := datastruct.ArrayOf(1, 2)
		arr.Append(3, 4)
		require.Equal(t, []int{1, 2, 3, 4}, arr.ToSlice())
	})

	t.Run("Lookup", func(t *testing.T) {
		arr := datastruct.ArrayOf("a", "b")
		v, ok := arr.Lookup(1)
		require.True(t, ok)
		require.Equal(t, "b", v)
		_, ok = arr.Lookup(2)
		require.False(t, ok)
		_, ok = arr.Lookup(-1)
		require.False(t, ok)
	})

	t.Run("Set overwrites existing positions only", func(t *testing.T) {
		arr := datastruct.ArrayOf(1, 2, 3)
		require.True(t, arr.Set(1, 42))
		require.Equal(t, []int{1, 42, 3}, arr.ToSlice())
		require.False(t, arr.Set(3, 7))
	})

	t.Run("Insert places the values before the position", func(t *testing.T) {
		arr := datastruct.ArrayOf(1, 4)
		require.True(t, arr.Insert(1, 2, 3))
		require.Equal(t, []int{1, 2, 3, 4}, arr.ToSlice())
	})

	t.Run("Insert at Len appends", func(t *testing.T) {
		arr := datastruct.ArrayOf(1)
		require.True(t, arr.Insert(1, 2))
		require.Equal(t, []int{1, 2}, arr.ToSlice())
		require.False(t, arr.Insert(5, 3))
	})

	t.Run("Delete removes the element and keeps the order", func(t *testing.T) {
		arr := datastruct.ArrayOf(1, 2, 3)
		require.True(t, arr.Delete(1))
		require.Equal(t, []int{1, 3}, arr.ToSlice())
		require.False(t, arr.Delete(9))
	})

	t.Run("ToSlice returns a copy", func(t *testing.T) {
		arr := datastruct.ArrayOf(1, 2)
		got := arr.ToSlice()
		got[0] = 42
		require.Equal(t, []int{1, 2}, arr.ToSlice())
	})

	t.Run("Iter yields the elements in order", func(t *testing.T) {
		arr := datastruct.ArrayOf(1, 2, 3)
		require.Equal(t, []int{1, 2, 3}, iterx.Collect(arr.Iter()))
	})

	t.Run("Stream plugs the array into the fluent pipeline", func(t *testing.T) {
		arr := datastruct.ArrayOf(1, 2, 3, 4)
		got, err := arr.Stream().
			Filter(func(n int) bool { return n%2 == 0 }).
			Collect()
		require.NoError(t, err)
		require.Equal(t, []int{2, 4}, got)
	})

	t.Run("ArrayFrom materialises a pull iterator", func(t *testing.T) {
		arr := datastruct.ArrayFrom(iterx.Take(iterx.Reiterate("x"), 3))
		require.Equal(t, []string{"x", "x", "x"}, arr.ToSlice())
	})

	t.Run("Sort without a comparator uses the generic ordering", func(t *testing.T) {
		arr := datastruct.ArrayOf(3, 1, 2)
		arr.Sort()
		require.Equal(t, []int{1, 2, 3}, arr.ToSlice())
	})

	t.Run("Sort with a comparator", func(t *testing.T) {
		arr := datastruct.ArrayOf(1, 3, 2)
		arr.Sort(func(a, b int) int { return compare.Numbers(b, a) })
		require.Equal(t, []int{3, 2, 1}, arr.ToSlice())
	})

	t.Run("Sort works on any element type", func(t *testing.T) {
		arr := datastruct.ArrayOf[any]("b", 2, "a", 1)
		arr.Sort()
		require.Equal(t, []any{1, 2, "a", "b"}, arr.ToSlice())
	})

	t.Run("Reverse", func(t *testing.T) {
		arr := datastruct.ArrayOf(1, 2, 3)
		arr.Reverse()
		require.Equal(t, []int{3, 2, 1}, arr.ToSlice())
	})
}
