package cartesian

// Slice adapts a Go slice to the Set interface. The slice header is
// captured at adaptation time: elements stay shared with the caller,
// but a later append on the caller's variable is not visible through
// this view. Use Ref for a live, read-through view.
type Slice[T any] []T

// Len reports the number of elements in the adapted slice.
func (s Slice[T]) Len() int { return len(s) }

// At returns the element at position i.
func (s Slice[T]) At(i int) T { return s[i] }

// SliceRef is a pointer-backed Set view: Len and At read through the
// pointer on every call, so growing or shrinking the caller's slice is
// visible immediately. This is the natural companion of Lazy mode.
type SliceRef[T any] struct {
	s *[]T
}

// Ref adapts a pointer to a slice into a live SliceRef view.
func Ref[T any](s *[]T) SliceRef[T] {
	return SliceRef[T]{s: s}
}

// Len reports the current length of the referenced slice.
func (r SliceRef[T]) Len() int { return len(*r.s) }

// At returns the element currently at position i.
func (r SliceRef[T]) At(i int) T { return (*r.s)[i] }

// IntRange is the integer set [Lo, Hi) without element storage.
// A reversed range (Hi ≤ Lo) is simply empty.
type IntRange struct {
	Lo, Hi int
}

// Len reports max(Hi-Lo, 0).
func (r IntRange) Len() int {
	if r.Hi <= r.Lo {
		return 0
	}
	return r.Hi - r.Lo
}

// At returns Lo+i.
func (r IntRange) At(i int) int { return r.Lo + i }
