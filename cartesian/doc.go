// Package cartesian maps linear indices to tuples of the Cartesian
// product of finite sets, on demand, without materializing the product
// and without copying the input sets.
//
// 🚀 What is the mixed-radix index mapper?
//
//	Treat index n as a number in a mixed-radix positional system where
//	digit j has radix Len(sets[j]): digit 0 is most significant, the
//	last digit cycles fastest. Decoding n digit by digit picks exactly
//	one element per set — a bijection between [0, Count()) and the
//	product. It's widely used for:
//	  • Parameter sweeps & grid search (address combination #n directly)
//	  • Sharding combinatorial work across workers by index range
//	  • Property-based and pairwise test-case selection
//	  • Addressing cells of multi-dimensional arrays
//
// ✨ Key features:
//   - Get(n) / Coords(n) / Scan(n, ...): tuple, positional, or
//     destination-pointer form of the same O(k) decode
//   - Index(coords...): the inverse encoding
//   - Lazy mode: sizes re-read from the live sets on every call —
//     growing a set is visible on the next query (choose via WithMode)
//   - Precomputed mode: strides frozen at construction, immutable,
//     safe for unsynchronized concurrent readers
//   - strict range policy by default; WithWraparound() restores the
//     legacy Euclidean-modulo behavior
//
// ⚙️ Usage:
//
//	import "github.com/helluin912/Set-CartesianProduct-Lazy/cartesian"
//
//	a := cartesian.Slice[string]{"foo", "bar", "baz", "bah"}
//	b := cartesian.Slice[string]{"wibble", "wobble", "weeble"}
//	c := cartesian.Slice[string]{"nip", "nop"}
//
//	p, err := cartesian.New([]cartesian.Set[string]{a, b, c},
//	  cartesian.WithPrecompute(),
//	)
//	// p.Count() == 24, p.LastIdx() == 23
//	tuple, err := p.Get(8) // [bar wobble nip]
//
// Edge cases, by contract:
//   - zero dimensions: Count() == 1, the single tuple is empty
//   - any empty set: Count() == 0, LastIdx() == -1, every decode
//     returns ErrEmptyProduct
//   - mutating a set after Precomputed construction yields undefined
//     results; Lazy mode reads sizes live, and synchronizing caller
//     mutation against concurrent queries is the caller's job
//
// Performance:
//
//   - Count: O(1) Precomputed, O(k) Lazy
//   - Get/Coords/Scan/Index: O(k) in both modes
//   - construction: O(k) (single right-to-left stride pass)
//
// Errors:
//   - ErrNilSet       — nil Set passed to New.
//   - ErrIndexRange   — index or coordinate out of range (strict policy).
//   - ErrEmptyProduct — decode attempted while some set is empty.
//   - ErrArity        — destination/coordinate count ≠ Dims().
//
// See examples in example_test.go and runnable scenarios in examples/.
package cartesian
