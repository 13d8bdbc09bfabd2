package hermitego

import (
	"math/big"

	"github.com/hupe1980/hermitego/algebra"
	"github.com/hupe1980/hermitego/internal/multiset"
)

// HTC returns the Hermite tensor component for an index string.
//
// The component is the product of single-variable Hermite polynomials, one
// per axis, each of order equal to that axis's occurrence count in the
// index. Only the ordering-free multiset of labels matters, so any
// permutation of the index yields the identical polynomial.
//
// Occurrences of 'y' are counted only when the dimension is at least 2, and
// 'z' only when it is 3; all other characters are ignored. An index with no
// in-range labels yields the constant polynomial 1.
//
// Defaults: dimension 2, probabilist's normalization, default backend.
// Fails with *DomainError if the configured dimension is outside [1,3].
func HTC(index string, optFns ...Option) (algebra.Polynomial, error) {
	o := applyOptions(optFns)
	if o.dimension < 1 || o.dimension > 3 {
		return nil, newDomainError("dimension", o.dimension, "in [1, 3]")
	}

	counts := countAxes(index, o.dimension)
	o.logger.Debug("assembling hermite tensor component",
		"index", index, "counts", counts, "dimension", o.dimension, "backend", o.backend.Name())

	return assemble(o.backend, counts, o.norm), nil
}

// countAxes converts a raw index string into per-axis counts, masking axes
// beyond the dimension and skipping unrecognized characters.
func countAxes(index string, dimension int) multiset.Counts {
	var c multiset.Counts
	for i := 0; i < len(index); i++ {
		switch index[i] {
		case 'x':
			c[0]++
		case 'y':
			if dimension > 1 {
				c[1]++
			}
		case 'z':
			if dimension > 2 {
				c[2]++
			}
		}
	}
	return c
}

// assemble multiplies the per-axis single-variable polynomials. Axes with a
// zero count contribute no factor, so the empty multiset yields 1.
func assemble(b algebra.Backend, c multiset.Counts, norm Normalization) algebra.Polynomial {
	prod := b.Constant(big.NewRat(1, 1))
	for i, cnt := range c {
		if cnt == 0 {
			continue
		}
		prod = b.Mul(prod, singleVariable(b, cnt, Axis(i+1), norm))
	}
	return b.Normalize(prod)
}
