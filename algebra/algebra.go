// Package algebra centralizes the symbolic polynomial arithmetic behind the
// Hermite generators.
//
// Hermitego intentionally treats backend selection as an equality boundary:
// polynomials produced by different backends are never comparable with each
// other, only through the backend that produced them.
package algebra

import (
	"fmt"
	"math/big"
)

// Polynomial is an opaque symbolic polynomial over the variables x, y, z.
//
// The concrete representation belongs to the backend that produced the value.
// Equality is defined only via Backend.Equal on normalized forms; String and
// LaTeX render a deterministic human-readable form.
type Polynomial interface {
	String() string
	LaTeX() string
}

// Backend is the capability set the Hermite generators need from a symbolic
// algebra implementation: exact rational scalars, integer powers, addition,
// multiplication, and a normalization pass that produces a canonical
// sum-of-monomials form suitable for structural equality.
//
// Implementations must be stateless and safe for concurrent use.
//
// Built-in backends:
//   - dense: sparse monomial maps, always canonical (default, fastest)
//   - expr: immutable expression trees with an explicit expand pass
type Backend interface {
	// Name returns the stable name of the backend.
	Name() string

	// Symbol returns the polynomial consisting of the single variable with
	// the given label. Only "x", "y" and "z" are valid labels; anything else
	// is a programmer error and panics.
	Symbol(label string) Polynomial

	// Constant lifts an exact rational into the polynomial domain.
	Constant(c *big.Rat) Polynomial

	// Pow raises p to a non-negative integer power.
	Pow(p Polynomial, k int) Polynomial

	// Add returns a + b.
	Add(a, b Polynomial) Polynomial

	// Mul returns a * b.
	Mul(a, b Polynomial) Polynomial

	// Scale returns c * p.
	Scale(p Polynomial, c *big.Rat) Polynomial

	// Normalize returns p in canonical expanded, monomial-collected form.
	Normalize(p Polynomial) Polynomial

	// Equal reports whether a and b are structurally equal after
	// normalization.
	Equal(a, b Polynomial) bool
}

// Default is the backend used when none is configured by name or value.
var Default Backend = Dense{}

// ByName returns a built-in backend by its stable name or one of its aliases.
func ByName(name string) (Backend, bool) {
	switch name {
	case "dense", "fast", "poly":
		return Dense{}, true
	case "expr", "tree", "symbolic":
		return Expr{}, true
	default:
		return nil, false
	}
}

// Resolve returns the backend registered under name, falling back to Default
// for empty or unrecognized names.
//
// The permissive fallback is deliberate: backend choice affects performance,
// not results, so a misspelled name degrades instead of failing.
func Resolve(name string) Backend {
	if b, ok := ByName(name); ok {
		return b
	}
	return Default
}

// axisIndex maps a variable label to its slot in an exponent vector.
func axisIndex(label string) int {
	switch label {
	case "x":
		return 0
	case "y":
		return 1
	case "z":
		return 2
	default:
		panic(fmt.Sprintf("algebra: unknown variable label %q (want x, y or z)", label))
	}
}

var axisLabels = [3]string{"x", "y", "z"}
