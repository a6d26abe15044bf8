package cartesian_test

import (
	"testing"

	"github.com/helluin912/Set-CartesianProduct-Lazy/cartesian"
	"github.com/stretchr/testify/assert"
)

// TestSlice verifies the value adapter: shared elements, fixed header.
func TestSlice(t *testing.T) {
	s := cartesian.Slice[string]{"a", "b", "c"}
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "b", s.At(1))
}

// TestSliceRef verifies the pointer-backed adapter reads length and
// elements live through the caller's variable.
func TestSliceRef(t *testing.T) {
	data := []int{10, 20}
	r := cartesian.Ref(&data)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 20, r.At(1))

	data = append(data, 30)
	assert.Equal(t, 3, r.Len(), "append must be visible through the view")
	assert.Equal(t, 30, r.At(2))

	data = data[:1]
	assert.Equal(t, 1, r.Len(), "shrink must be visible through the view")
}

// TestIntRange covers the storage-free integer set, including the
// empty and reversed cases.
func TestIntRange(t *testing.T) {
	r := cartesian.IntRange{Lo: 5, Hi: 8}
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 5, r.At(0))
	assert.Equal(t, 7, r.At(2))

	assert.Equal(t, 0, cartesian.IntRange{Lo: 2, Hi: 2}.Len())
	assert.Equal(t, 0, cartesian.IntRange{Lo: 4, Hi: 1}.Len(), "reversed range is empty")
}
