// Package setcartesian gives you random access into the Cartesian product
// of an ordered list of finite sets — without ever materializing it.
//
// 🚀 What is Set-CartesianProduct-Lazy?
//
//	A small, thread-friendly library built around one idea: the tuples of
//	a product can be addressed like digits of a mixed-radix number, so
//	tuple number n is computable in O(k) from n alone.
//		• Product descriptor: borrows your sets, copies nothing
//		• Get(n): decode any linear index straight into its tuple
//		• Count()/LastIdx(): product cardinality without enumeration
//		• Lazy mode: read-through — set growth is visible on the next call
//		• Precomputed mode: frozen strides, immutable, share freely
//
// ✨ Why choose it?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – explicit range policy, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – any Len()/At() view plugs in as a dimension
//
// Everything lives in one subpackage:
//
//	cartesian/ — the mixed-radix index mapper: Set views, Product
//	             descriptor, Lazy/Precomputed modes, decode & encode
//
// Quick ASCII example, sets of sizes 2 and 3:
//
//	n:      0      1      2      3      4      5
//	tuple (0,0)  (0,1)  (0,2)  (1,0)  (1,1)  (1,2)
//
//	the last dimension cycles fastest, like an odometer.
//
// Dive into cartesian/doc.go for the algorithm, the two modes and their
// trade-offs, and the examples/ directory for runnable scenarios.
//
//	go get github.com/helluin912/Set-CartesianProduct-Lazy/cartesian
package setcartesian
