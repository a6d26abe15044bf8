package cartesian

import (
	"fmt"
)

// Product addresses the Cartesian product of an ordered list of Sets
// without materializing it. Index n and tuple are related by the
// standard mixed-radix decomposition: digit j has radix Len(sets[j]),
// digit 0 is most significant and the last digit cycles fastest.
//
// The descriptor borrows the sets; it never copies or mutates them.
// In Lazy mode every query re-reads the live set sizes; in Precomputed
// mode sizes and strides are frozen at construction and the descriptor
// is immutable — safe for unsynchronized concurrent readers.
type Product[T any] struct {
	sets []Set[T]
	opts Options

	// Precomputed caches, filled exactly once in New and never
	// recomputed. All nil/zero in Lazy mode.
	sizes   []int
	factors []int
	count   int
}

// New constructs a Product over sets, in order. Zero sets are allowed
// (the product then holds exactly one tuple, the empty one) and empty
// sets are allowed (Count() becomes 0).
//
// Returns ErrNilSet if any entry is nil. The sets slice itself is
// copied so later mutation of the argument cannot change the number of
// dimensions; the sets behind it stay borrowed.
//
// With WithPrecompute, sizes and strides for every dimension are
// computed here in a single right-to-left pass: O(k) time and memory.
func New[T any](sets []Set[T], opts ...Option) (*Product[T], error) {
	for j, s := range sets {
		if s == nil {
			return nil, fmt.Errorf("%w: dimension %d", ErrNilSet, j)
		}
	}

	p := &Product[T]{
		sets: append([]Set[T](nil), sets...),
		opts: gatherOptions(opts...),
	}
	if p.opts.Mode == Precomputed {
		p.sizes, p.factors, p.count = resolveDims(p.sets)
	}

	return p, nil
}

// resolveDims reads each set's size and computes the stride of every
// dimension (the product of all sizes after it) in one right-to-left
// pass. factors[k-1] is always 1; count is the product of all sizes,
// which degenerates to 1 for zero dimensions.
func resolveDims[T any](sets []Set[T]) (sizes, factors []int, count int) {
	k := len(sets)
	sizes = make([]int, k)
	factors = make([]int, k)
	count = 1
	for j := k - 1; j >= 0; j-- {
		sizes[j] = sets[j].Len()
		factors[j] = count
		count *= sizes[j]
	}

	return sizes, factors, count
}

// dims returns the effective sizes, strides and count for this call:
// the frozen caches in Precomputed mode, a fresh O(k) resolution of the
// live sets in Lazy mode.
func (p *Product[T]) dims() (sizes, factors []int, count int) {
	if p.opts.Mode == Precomputed {
		return p.sizes, p.factors, p.count
	}

	return resolveDims(p.sets)
}

// Dims reports the number of dimensions k.
func (p *Product[T]) Dims() int { return len(p.sets) }

// Mode reports the resolution mode chosen at construction.
func (p *Product[T]) Mode() Mode { return p.opts.Mode }

// Count returns the number of tuples in the product: the product of
// all set sizes, 1 for zero sets, 0 if any set is empty.
// O(1) in Precomputed mode, O(k) in Lazy mode.
func (p *Product[T]) Count() int {
	_, _, count := p.dims()

	return count
}

// LastIdx returns Count()-1, the largest valid index. For an empty
// product this is -1, so iterating 0..LastIdx() naturally runs zero
// times.
func (p *Product[T]) LastIdx() int {
	return p.Count() - 1
}

// normalize maps a caller index onto [0, count) per the range policy:
// Euclidean modulo under Wraparound, ErrIndexRange otherwise.
// An empty product admits no index under either policy.
func (p *Product[T]) normalize(n, count int) (int, error) {
	if count == 0 {
		return 0, fmt.Errorf("%w: no tuple for index %d", ErrEmptyProduct, n)
	}
	if p.opts.Wraparound {
		n %= count
		if n < 0 {
			n += count
		}
		return n, nil
	}
	if n < 0 || n >= count {
		return 0, fmt.Errorf("%w: index %d, valid range [0,%d)", ErrIndexRange, n, count)
	}

	return n, nil
}

// Coords decodes index n into one index per dimension — the expanded
// positional form of the tuple. For each dimension j,
//
//	coords[j] = (n / factors[j]) % sizes[j]
//
// so the last dimension cycles fastest as n increments.
// O(k) time and memory in both modes.
func (p *Product[T]) Coords(n int) ([]int, error) {
	sizes, factors, count := p.dims()
	n, err := p.normalize(n, count)
	if err != nil {
		return nil, err
	}

	coords := make([]int, len(p.sets))
	for j := range coords {
		coords[j] = (n / factors[j]) % sizes[j]
	}

	return coords, nil
}

// Get decodes index n into its tuple: one element drawn from each set,
// in set order. For 0 ≤ n < Count() the mapping is a bijection between
// indices and tuples. O(k) time and memory in both modes.
func (p *Product[T]) Get(n int) ([]T, error) {
	coords, err := p.Coords(n)
	if err != nil {
		return nil, err
	}

	tuple := make([]T, len(coords))
	for j, c := range coords {
		tuple[j] = p.sets[j].At(c)
	}

	return tuple, nil
}

// Scan decodes index n into caller-provided destinations, one pointer
// per dimension — the multiple-independent-values form of Get.
// Returns ErrArity if the number of destinations differs from Dims();
// nothing is written unless the decode succeeds.
func (p *Product[T]) Scan(n int, dst ...*T) error {
	if len(dst) != len(p.sets) {
		return fmt.Errorf("%w: %d destinations for %d dimensions", ErrArity, len(dst), len(p.sets))
	}
	coords, err := p.Coords(n)
	if err != nil {
		return err
	}

	for j, c := range coords {
		*dst[j] = p.sets[j].At(c)
	}

	return nil
}

// Index is the inverse of Coords: it encodes one index per dimension
// back into the linear index sum(coords[j] * factors[j]).
//
// Returns ErrArity if the coordinate count differs from Dims(). Each
// coordinate is subject to the range policy of its own dimension:
// rejected with ErrIndexRange when outside [0, size), or reduced by
// Euclidean modulo under Wraparound. O(k) in both modes.
func (p *Product[T]) Index(coords ...int) (int, error) {
	if len(coords) != len(p.sets) {
		return 0, fmt.Errorf("%w: %d coordinates for %d dimensions", ErrArity, len(coords), len(p.sets))
	}

	sizes, factors, _ := p.dims()
	n := 0
	for j, c := range coords {
		if sizes[j] == 0 {
			return 0, fmt.Errorf("%w: dimension %d is empty", ErrEmptyProduct, j)
		}
		if p.opts.Wraparound {
			c %= sizes[j]
			if c < 0 {
				c += sizes[j]
			}
		} else if c < 0 || c >= sizes[j] {
			return 0, fmt.Errorf("%w: coordinate %d in dimension %d, valid range [0,%d)", ErrIndexRange, c, j, sizes[j])
		}
		n += c * factors[j]
	}

	return n, nil
}
