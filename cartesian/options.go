package cartesian

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMode resolves sizes and strides from the live sets.
	DefaultMode = Lazy

	// DefaultWraparound rejects out-of-range indices with ErrIndexRange.
	// Enabling wraparound restores the legacy modulo behavior instead.
	DefaultWraparound = false
)

// panic message for programmer error (no magic strings).
const panicUnknownMode = "cartesian: WithMode: unknown mode"

// Option configures a Product via functional arguments.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved construction parameters of a Product.
type Options struct {
	// Mode selects Lazy or Precomputed size/stride resolution.
	Mode Mode

	// Wraparound, when true, reduces any index onto [0, Count()) by
	// Euclidean modulo instead of rejecting it. Negative indices wrap
	// too; the empty product still errors (nothing to wrap onto).
	Wraparound bool
}

// DefaultOptions returns Options with the documented defaults:
// Mode=Lazy, strict range policy (Wraparound=false).
func DefaultOptions() Options {
	return Options{
		Mode:       DefaultMode,
		Wraparound: DefaultWraparound,
	}
}

// WithMode selects the size/stride resolution mode.
// Panics if m is neither Lazy nor Precomputed.
func WithMode(m Mode) Option {
	if m != Lazy && m != Precomputed {
		panic(panicUnknownMode)
	}
	return func(o *Options) {
		o.Mode = m
	}
}

// WithPrecompute freezes sizes and strides at construction.
// Shorthand for WithMode(Precomputed).
func WithPrecompute() Option {
	return func(o *Options) {
		o.Mode = Precomputed
	}
}

// WithWraparound selects the legacy range policy: indices are reduced
// onto [0, Count()) by Euclidean modulo instead of being rejected.
func WithWraparound() Option {
	return func(o *Options) {
		o.Wraparound = true
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
