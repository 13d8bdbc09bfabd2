package algebra

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Dense is the sparse-monomial-map backend.
//
// Polynomials are maps from exponent vectors to exact rational coefficients,
// so every value is already in canonical form; Normalize only prunes zero
// coefficients. This is the fastest of the built-in backends and the default.
type Dense struct{}

// Name returns the unique name of the backend ("dense").
func (Dense) Name() string { return "dense" }

type densePoly struct {
	// terms maps (ex, ey, ez) exponent vectors to nonzero coefficients.
	terms map[[3]int]*big.Rat
}

func (Dense) Symbol(label string) Polynomial {
	i := axisIndex(label)
	var e [3]int
	e[i] = 1
	return &densePoly{terms: map[[3]int]*big.Rat{e: big.NewRat(1, 1)}}
}

func (Dense) Constant(c *big.Rat) Polynomial {
	p := &densePoly{terms: map[[3]int]*big.Rat{}}
	if c != nil && c.Sign() != 0 {
		p.terms[[3]int{}] = new(big.Rat).Set(c)
	}
	return p
}

func (d Dense) Pow(p Polynomial, k int) Polynomial {
	if k < 0 {
		panic("algebra: negative exponent")
	}
	acc := d.Constant(big.NewRat(1, 1))
	for i := 0; i < k; i++ {
		acc = d.Mul(acc, p)
	}
	return acc
}

func (d Dense) Add(a, b Polynomial) Polynomial {
	pa, pb := d.poly(a), d.poly(b)
	out := &densePoly{terms: make(map[[3]int]*big.Rat, len(pa.terms)+len(pb.terms))}
	for e, c := range pa.terms {
		out.terms[e] = new(big.Rat).Set(c)
	}
	for e, c := range pb.terms {
		if acc, ok := out.terms[e]; ok {
			acc.Add(acc, c)
			if acc.Sign() == 0 {
				delete(out.terms, e)
			}
		} else {
			out.terms[e] = new(big.Rat).Set(c)
		}
	}
	return out
}

func (d Dense) Mul(a, b Polynomial) Polynomial {
	pa, pb := d.poly(a), d.poly(b)
	out := &densePoly{terms: make(map[[3]int]*big.Rat, len(pa.terms)*len(pb.terms))}
	for ea, ca := range pa.terms {
		for eb, cb := range pb.terms {
			e := [3]int{ea[0] + eb[0], ea[1] + eb[1], ea[2] + eb[2]}
			c := new(big.Rat).Mul(ca, cb)
			if acc, ok := out.terms[e]; ok {
				acc.Add(acc, c)
				if acc.Sign() == 0 {
					delete(out.terms, e)
				}
			} else {
				out.terms[e] = c
			}
		}
	}
	return out
}

func (d Dense) Scale(p Polynomial, c *big.Rat) Polynomial {
	pp := d.poly(p)
	out := &densePoly{terms: make(map[[3]int]*big.Rat, len(pp.terms))}
	if c == nil || c.Sign() == 0 {
		return out
	}
	for e, t := range pp.terms {
		out.terms[e] = new(big.Rat).Mul(t, c)
	}
	return out
}

// Normalize prunes zero coefficients. Dense polynomials are canonical by
// construction, so this is cheap.
func (d Dense) Normalize(p Polynomial) Polynomial {
	pp := d.poly(p)
	out := &densePoly{terms: make(map[[3]int]*big.Rat, len(pp.terms))}
	for e, c := range pp.terms {
		if c.Sign() != 0 {
			out.terms[e] = new(big.Rat).Set(c)
		}
	}
	return out
}

func (d Dense) Equal(a, b Polynomial) bool {
	pa, pb := d.poly(d.Normalize(a)), d.poly(d.Normalize(b))
	if len(pa.terms) != len(pb.terms) {
		return false
	}
	for e, ca := range pa.terms {
		cb, ok := pb.terms[e]
		if !ok || ca.Cmp(cb) != 0 {
			return false
		}
	}
	return true
}

func (Dense) poly(p Polynomial) *densePoly {
	dp, ok := p.(*densePoly)
	if !ok {
		panic("algebra: dense backend applied to a foreign polynomial")
	}
	return dp
}

func (p *densePoly) String() string { return formatTerms(p.sorted(), renderText) }
func (p *densePoly) LaTeX() string  { return formatTerms(p.sorted(), renderLaTeX) }

func (p *densePoly) sorted() []term {
	ts := make([]term, 0, len(p.terms))
	for e, c := range p.terms {
		ts = append(ts, term{coeff: c, exps: e})
	}
	sortTerms(ts)
	return ts
}

// term is one monomial of a canonical polynomial, shared by the backends for
// rendering.
type term struct {
	coeff *big.Rat
	exps  [3]int
}

func (t term) degree() int { return t.exps[0] + t.exps[1] + t.exps[2] }

// sortTerms orders terms by total degree descending, then lexicographically
// descending on the exponent vector (so x^2 before x*y before y^2).
func sortTerms(ts []term) {
	sort.Slice(ts, func(i, j int) bool {
		di, dj := ts[i].degree(), ts[j].degree()
		if di != dj {
			return di > dj
		}
		for k := 0; k < 3; k++ {
			if ts[i].exps[k] != ts[j].exps[k] {
				return ts[i].exps[k] > ts[j].exps[k]
			}
		}
		return false
	})
}

type renderMode int

const (
	renderText renderMode = iota
	renderLaTeX
)

// formatTerms renders a sorted term list with sign-aware joining:
// "x^3 - 3*x" rather than "x^3 + -3*x".
func formatTerms(ts []term, mode renderMode) string {
	if len(ts) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range ts {
		neg := t.coeff.Sign() < 0
		abs := new(big.Rat).Abs(t.coeff)
		switch {
		case i == 0 && neg:
			sb.WriteString("-")
		case i > 0 && neg:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		sb.WriteString(monomial(abs, t.exps, mode))
	}
	return sb.String()
}

func monomial(abs *big.Rat, exps [3]int, mode renderMode) string {
	var vars []string
	for i, e := range exps {
		switch {
		case e == 1:
			vars = append(vars, axisLabels[i])
		case e > 1:
			if mode == renderLaTeX {
				vars = append(vars, fmt.Sprintf("%s^{%d}", axisLabels[i], e))
			} else {
				vars = append(vars, fmt.Sprintf("%s^%d", axisLabels[i], e))
			}
		}
	}
	coeff := ratString(abs, mode)
	if len(vars) == 0 {
		return coeff
	}
	sep := "*"
	if mode == renderLaTeX {
		sep = " "
	}
	joined := strings.Join(vars, sep)
	if abs.Cmp(big.NewRat(1, 1)) == 0 {
		return joined
	}
	return coeff + sep + joined
}

func ratString(r *big.Rat, mode renderMode) string {
	if r.Sign() < 0 {
		return "-" + ratString(new(big.Rat).Abs(r), mode)
	}
	if r.IsInt() {
		return r.Num().String()
	}
	if mode == renderLaTeX {
		return fmt.Sprintf("\\frac{%s}{%s}", r.Num().String(), r.Denom().String())
	}
	return r.RatString()
}
