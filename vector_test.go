package vector_test

import (
	"testing"

	vector "github.com/arborvector/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	t.Parallel()

	const n = 4096
	var v vector.Vector[int]

	t.Run("ZeroValue", func(t *testing.T) {
		assert.Zero(t, v.Len(), "zero-value vector should have zero length")
		assert.True(t, v.IsEmpty())
	})

	t.Run("Append", func(t *testing.T) {
		for i := 0; i < n; i++ {
			v = v.Push(i)
		}

		require.Equal(t, n, v.Len(), "should contain %d elements", n)
		require.Zero(t, v.Get(0), "first element should be zero")
		require.Equal(t, n-1, v.Get(n-1), "last element should be %d", n-1)

		v2 := v.Append()
		assert.Equal(t, v, v2, "append with no args should no-op")
	})

	t.Run("Pop", func(t *testing.T) {
		for i := n - 1; i >= 0; i-- {
			v = v.Pop()
			require.Equal(t, i, v.Len())
		}

		require.Zero(t, v, "should be zero-value vector")
	})
}

func TestBulkAppend(t *testing.T) {
	t.Parallel()

	var v vector.Vector[int]
	v = v.Append(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.Equal(t, 10, v.Len(), "should bulk-append 10 elements")

	for i := 0; i < 10; i++ {
		assert.Equal(t, i, v.Get(i))
	}
}

func TestGetSet(t *testing.T) {
	t.Parallel()

	const n = 4096

	is := make([]int, n)
	for i := range is {
		is[i] = i
	}

	v := vector.FromSlice(is)

	t.Run("Overwrite", func(t *testing.T) {
		for i := 0; i < n; i++ {
			v = v.Set(i, -i)
		}

		for i := 0; i < n; i++ {
			assert.True(t, v.Get(i) <= 0, "value should be overwritten")
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { v.Get(9001) },
			"should panic when out of bounds")
		assert.Panics(t, func() { v.Get(-1) },
			"should panic when out of bounds")
		assert.Panics(t, func() { v.Set(n, 9001) },
			"should panic when out of bounds")
		assert.Panics(t, func() { v.Set(-1, 9001) },
			"should panic when out of bounds")

		assert.PanicsWithValue(t, &vector.OutOfBoundsError{Index: -1, Len: n},
			func() { v.Get(-1) })
	})
}

func TestPopEmpty(t *testing.T) {
	t.Parallel()

	var v vector.Vector[int]
	assert.PanicsWithValue(t, &vector.EmptyError{}, func() { v.Pop() })
}

func TestFromSlice(t *testing.T) {
	t.Parallel()

	const n = 4096

	is := make([]int, n)
	for i := range is {
		is[i] = i
	}

	v := vector.FromSlice(is)
	assert.Equal(t, n, v.Len(), "should have length of %d", n)

	for i := 0; i < n; i++ {
		assert.Equal(t, i, v.Get(i))
	}
}

func TestFromSliceEmpty(t *testing.T) {
	t.Parallel()

	v := vector.FromSlice[int](nil)
	assert.Zero(t, v.Len())
	assert.True(t, v.IsEmpty())
}
