// Package cartesian defines core types, options, and sentinel errors
// for the cartesian subpackage of
// github.com/helluin912/Set-CartesianProduct-Lazy.
package cartesian

import (
	"errors"
)

// Sentinel errors for product construction and decoding.
var (
	// ErrNilSet indicates a nil Set was passed to New.
	ErrNilSet = errors.New("cartesian: nil set in construction")
	// ErrIndexRange indicates an index outside [0, Count()) under the
	// strict range policy, or a coordinate outside its dimension.
	ErrIndexRange = errors.New("cartesian: index out of range")
	// ErrEmptyProduct indicates a decode over a product with an empty set.
	ErrEmptyProduct = errors.New("cartesian: product is empty")
	// ErrArity indicates a destination or coordinate count that does not
	// match the number of dimensions.
	ErrArity = errors.New("cartesian: arity mismatch")
)

// Set is a borrowed, read-only view over an ordered finite collection.
// Len must be O(1). The product descriptor never copies elements and
// never mutates the underlying collection; it only calls Len and At.
//
// Any implementation works as a dimension: the adapters in this package
// (Slice, SliceRef, IntRange) cover the common cases.
type Set[T any] interface {
	// Len reports the current number of elements.
	Len() int
	// At returns the element at position i, 0 ≤ i < Len().
	At(i int) T
}

// Mode controls how a Product resolves set sizes and strides.
//
//   - Lazy        — recompute sizes and strides from the live sets on
//     every call. Growing or shrinking a set is reflected by the next
//     Count/Get without reconstruction (read-through semantics).
//
//   - Precomputed — cache sizes and strides once, at construction.
//     Every query is O(k) over frozen caches and the descriptor is
//     immutable, but later size changes of the underlying sets yield
//     undefined results. This is the documented trade, not a bug.
type Mode int

const (
	// Lazy mode: live sizes, read-through semantics, nothing cached.
	Lazy Mode = iota

	// Precomputed mode: sizes and strides frozen at construction.
	Precomputed
)

// String returns the mode name for diagnostics.
func (m Mode) String() string {
	switch m {
	case Lazy:
		return "Lazy"
	case Precomputed:
		return "Precomputed"
	default:
		return "Unknown"
	}
}
