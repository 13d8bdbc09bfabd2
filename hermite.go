package hermitego

import (
	"math/big"

	"github.com/hupe1980/hermitego/algebra"
	"github.com/hupe1980/hermitego/internal/multiset"
)

// SVHP returns the single-variable Hermite polynomial of the given order.
//
// Defaults: axis x, probabilist's normalization, default backend. The
// polynomial is returned in the backend's canonical expanded form.
//
// Fails with *DomainError if order is negative or the configured axis is
// outside [1,3].
func SVHP(order int, optFns ...Option) (algebra.Polynomial, error) {
	o := applyOptions(optFns)
	if order < 0 {
		return nil, newDomainError("order", order, "non-negative")
	}
	if !o.axis.valid() {
		return nil, newDomainError("axis", int(o.axis), "in [1, 3]")
	}

	o.logger.Debug("generating single-variable hermite polynomial",
		"order", order, "axis", o.axis.Label(), "normalization", o.norm.String(), "backend", o.backend.Name())

	return singleVariable(o.backend, order, o.axis, o.norm), nil
}

// singleVariable computes He_n or H_n for one axis by the closed-form sum
//
//	He_n(v) = n! * sum_{m=0}^{floor(n/2)} (-1)^m / (m! (n-2m)! 2^m) * v^(n-2m)
//	H_n(v)  = n! * sum_{m=0}^{floor(n/2)} (-1)^m / (m! (n-2m)!) * (2v)^(n-2m)
//
// using arbitrary-precision factorials so every coefficient is exact. The
// summation needs only scalar arithmetic, integer powers and addition from
// the backend; no differentiation.
func singleVariable(b algebra.Backend, order int, axis Axis, norm Normalization) algebra.Polynomial {
	if order == 0 {
		return b.Normalize(b.Constant(big.NewRat(1, 1)))
	}

	v := b.Symbol(axis.Label())
	orderFact := multiset.Factorial(order)

	sum := b.Constant(nil)
	for m := 0; m <= order/2; m++ {
		k := order - 2*m

		num := new(big.Int).Set(orderFact)
		den := new(big.Int).Mul(multiset.Factorial(m), multiset.Factorial(k))
		if norm == Probabilist {
			den.Mul(den, new(big.Int).Lsh(big.NewInt(1), uint(m)))
		} else {
			num.Lsh(num, uint(k)) // the (2v)^k factor, folded into the coefficient
		}
		if m%2 == 1 {
			num.Neg(num)
		}

		coeff := new(big.Rat).SetFrac(num, den)
		sum = b.Add(sum, b.Scale(b.Pow(v, k), coeff))
	}
	return b.Normalize(sum)
}
