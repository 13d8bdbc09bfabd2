package hermitego

import "github.com/hupe1980/hermitego/algebra"

type options struct {
	axis        Axis
	dimension   int
	norm        Normalization
	backend     algebra.Backend
	logger      *Logger
	parallelism int
}

func defaultOptions() *options {
	return &options{
		axis:        AxisX,
		dimension:   2,
		norm:        Probabilist,
		backend:     algebra.Default,
		logger:      NoopLogger(),
		parallelism: 1,
	}
}

func applyOptions(optFns []Option) *options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(o)
	}
	return o
}

// Option configures SVHP, HTC and HT.
//
// Options exist to keep the operation signatures small: every parameter
// beyond the leading one has a sensible default (axis x, dimension 2,
// probabilist's normalization, default backend, sequential enumeration).
type Option func(*options)

// WithAxis selects the axis (variable) for SVHP. Ignored by HTC and HT,
// which take their axes from the index. Out-of-range values surface as a
// *DomainError when the operation validates.
func WithAxis(a Axis) Option {
	return func(o *options) {
		o.axis = a
	}
}

// WithDimension restricts which axes are counted by HTC and HT. Labels
// beyond the dimension are masked, not rejected. Values outside [1,3]
// surface as a *DomainError when the operation validates.
func WithDimension(d int) Option {
	return func(o *options) {
		o.dimension = d
	}
}

// WithNormalization selects the probabilist's (default) or physicist's
// polynomial family.
func WithNormalization(n Normalization) Option {
	return func(o *options) {
		o.norm = n
	}
}

// WithBackend injects an algebra backend directly.
//
// If nil is passed, algebra.Default is used.
func WithBackend(b algebra.Backend) Option {
	return func(o *options) {
		if b == nil {
			b = algebra.Default
		}
		o.backend = b
	}
}

// WithBackendName selects an algebra backend by registry name or alias.
// Unrecognized names silently fall back to the default backend; backend
// choice affects performance, never results.
func WithBackendName(name string) Option {
	return func(o *options) {
		o.backend = algebra.Resolve(name)
	}
}

// WithLogger configures structured logging for the operations. The default
// logger discards everything; operations log at Debug level only.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithParallelism runs HT's per-component work across up to n goroutines.
// Components are independent and the backends are stateless, so the result
// is identical to the sequential path. Values below 2 keep enumeration
// sequential.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}
