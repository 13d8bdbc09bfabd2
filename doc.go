// Package hermitego generates components of N-dimensional Hermite polynomial
// tensors for Euclidean dimension 1-3, in the probabilist's or physicist's
// normalization, with exact rational arithmetic throughout.
//
// # Quick Start
//
// Single-variable polynomial:
//
//	p, _ := hermitego.SVHP(3)
//	fmt.Println(p) // x^3 - 3*x
//
//	p, _ = hermitego.SVHP(3, hermitego.WithNormalization(hermitego.Physicist))
//	fmt.Println(p) // 8*x^3 - 12*x
//
// Tensor component for an index string:
//
//	p, _ := hermitego.HTC("xxy", hermitego.WithDimension(2))
//
// Full rank-n tensor with equivalence classes:
//
//	tm, _ := hermitego.HT(2, hermitego.WithDimension(3))
//	for _, key := range tm.Keys() {
//	    entry := tm[key]
//	    fmt.Println(key, entry.Value, entry.Indices)
//	}
//
// # Indices and Masking
//
// An index is a string over the axis labels x, y, z. Order never matters:
// HTC("xyx") and HTC("xxy") are identical polynomials. Labels beyond the
// configured dimension and unrecognized characters are silently ignored;
// an index with no in-range labels yields the constant polynomial 1.
//
// # Algebra Backends
//
// Polynomial arithmetic is pluggable through the algebra package. Two
// reference backends ship with the library, selected by stable name:
//
//	hermitego.SVHP(6, hermitego.WithBackendName("expr"))
//
// Unrecognized names fall back to the default ("dense") rather than erroring.
//
// # Errors
//
// The only failure mode is *DomainError for out-of-range numeric arguments
// (negative order or rank, axis or dimension outside [1,3]). Validation runs
// before any computation; there are no partial results.
//
// # Key Features
//
//   - Closed-form generation (no recurrences, no differentiation)
//   - Exact big.Rat coefficients, structural polynomial equality
//   - Permutation equivalence classes with multinomial cardinalities
//   - Pluggable algebra backends (dense monomial maps, expression trees)
//   - Optional parallel enumeration across tensor components
package hermitego
