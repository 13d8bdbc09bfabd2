package algebra

import (
	"math/big"
	"strconv"
	"strings"
)

// Expr is the expression-tree backend.
//
// Polynomials are immutable trees of sums, products, powers, symbols and
// exact rational constants. Arithmetic builds trees without rewriting them;
// Normalize runs an explicit expand-and-collect pass that distributes
// products over sums and merges like monomials into the same canonical form
// the dense backend maintains incrementally. Slower, but the intermediate
// values keep their symbolic structure.
type Expr struct{}

// Name returns the unique name of the backend ("expr").
func (Expr) Name() string { return "expr" }

type exprNode interface {
	Polynomial
	render(mode renderMode) string
}

type exprNum struct{ v *big.Rat }
type exprSym struct{ axis int }
type exprPow struct {
	base exprNode
	k    int
}
type exprAdd struct{ terms []exprNode }
type exprMul struct{ factors []exprNode }

func (Expr) Symbol(label string) Polynomial { return exprSym{axis: axisIndex(label)} }

func (Expr) Constant(c *big.Rat) Polynomial {
	if c == nil {
		return exprNum{v: new(big.Rat)}
	}
	return exprNum{v: new(big.Rat).Set(c)}
}

func (e Expr) Pow(p Polynomial, k int) Polynomial {
	if k < 0 {
		panic("algebra: negative exponent")
	}
	switch k {
	case 0:
		return exprNum{v: big.NewRat(1, 1)}
	case 1:
		return p
	}
	return exprPow{base: e.node(p), k: k}
}

// Add builds a flattened sum without simplifying.
func (e Expr) Add(a, b Polynomial) Polynomial {
	ta, tb := flattenAdd(e.node(a)), flattenAdd(e.node(b))
	terms := make([]exprNode, 0, len(ta)+len(tb))
	terms = append(append(terms, ta...), tb...)
	return exprAdd{terms: terms}
}

// Mul builds a flattened product without distributing.
func (e Expr) Mul(a, b Polynomial) Polynomial {
	fa, fb := flattenMul(e.node(a)), flattenMul(e.node(b))
	factors := make([]exprNode, 0, len(fa)+len(fb))
	factors = append(append(factors, fa...), fb...)
	return exprMul{factors: factors}
}

func (e Expr) Scale(p Polynomial, c *big.Rat) Polynomial {
	return e.Mul(e.Constant(c), p)
}

// Normalize expands the tree into a flat sum of monomials, merges like
// terms, and rebuilds a canonical tree ordered by degree.
func (e Expr) Normalize(p Polynomial) Polynomial {
	ts := collect(expandNode(e.node(p)))
	sortTerms(ts)
	return rebuild(ts)
}

func (e Expr) Equal(a, b Polynomial) bool {
	ta := collect(expandNode(e.node(a)))
	tb := collect(expandNode(e.node(b)))
	if len(ta) != len(tb) {
		return false
	}
	m := make(map[[3]int]*big.Rat, len(ta))
	for _, t := range ta {
		m[t.exps] = t.coeff
	}
	for _, t := range tb {
		c, ok := m[t.exps]
		if !ok || c.Cmp(t.coeff) != 0 {
			return false
		}
	}
	return true
}

func (Expr) node(p Polynomial) exprNode {
	n, ok := p.(exprNode)
	if !ok {
		panic("algebra: expr backend applied to a foreign polynomial")
	}
	return n
}

func flattenAdd(n exprNode) []exprNode {
	if a, ok := n.(exprAdd); ok {
		return a.terms
	}
	return []exprNode{n}
}

func flattenMul(n exprNode) []exprNode {
	if m, ok := n.(exprMul); ok {
		return m.factors
	}
	return []exprNode{n}
}

// expandNode returns the fully distributed monomial list of a tree.
func expandNode(n exprNode) []term {
	switch v := n.(type) {
	case exprNum:
		return []term{{coeff: new(big.Rat).Set(v.v)}}
	case exprSym:
		var e [3]int
		e[v.axis] = 1
		return []term{{coeff: big.NewRat(1, 1), exps: e}}
	case exprPow:
		base := expandNode(v.base)
		acc := []term{{coeff: big.NewRat(1, 1)}}
		for i := 0; i < v.k; i++ {
			acc = mulTerms(acc, base)
		}
		return acc
	case exprAdd:
		var out []term
		for _, t := range v.terms {
			out = append(out, expandNode(t)...)
		}
		return out
	case exprMul:
		acc := []term{{coeff: big.NewRat(1, 1)}}
		for _, f := range v.factors {
			acc = mulTerms(acc, expandNode(f))
		}
		return acc
	default:
		panic("algebra: unknown expression node")
	}
}

func mulTerms(a, b []term) []term {
	out := make([]term, 0, len(a)*len(b))
	for _, ta := range a {
		for _, tb := range b {
			out = append(out, term{
				coeff: new(big.Rat).Mul(ta.coeff, tb.coeff),
				exps:  [3]int{ta.exps[0] + tb.exps[0], ta.exps[1] + tb.exps[1], ta.exps[2] + tb.exps[2]},
			})
		}
	}
	return out
}

// collect merges like monomials and drops zero coefficients.
func collect(ts []term) []term {
	m := make(map[[3]int]*big.Rat, len(ts))
	for _, t := range ts {
		if acc, ok := m[t.exps]; ok {
			acc.Add(acc, t.coeff)
		} else {
			m[t.exps] = new(big.Rat).Set(t.coeff)
		}
	}
	out := make([]term, 0, len(m))
	for e, c := range m {
		if c.Sign() != 0 {
			out = append(out, term{coeff: c, exps: e})
		}
	}
	return out
}

// rebuild turns a sorted monomial list back into a canonical tree.
func rebuild(ts []term) exprNode {
	if len(ts) == 0 {
		return exprNum{v: new(big.Rat)}
	}
	nodes := make([]exprNode, len(ts))
	for i, t := range ts {
		nodes[i] = monomialNode(t)
	}
	if len(nodes) == 1 {
		return nodes[0]
	}
	return exprAdd{terms: nodes}
}

func monomialNode(t term) exprNode {
	var factors []exprNode
	for i, e := range t.exps {
		switch {
		case e == 1:
			factors = append(factors, exprSym{axis: i})
		case e > 1:
			factors = append(factors, exprPow{base: exprSym{axis: i}, k: e})
		}
	}
	if len(factors) == 0 {
		return exprNum{v: t.coeff}
	}
	one := big.NewRat(1, 1)
	if t.coeff.Cmp(one) != 0 {
		factors = append([]exprNode{exprNum{v: t.coeff}}, factors...)
	}
	if len(factors) == 1 {
		return factors[0]
	}
	return exprMul{factors: factors}
}

// Rendering. Canonical trees print identically to the dense backend.

func (n exprNum) String() string { return n.render(renderText) }
func (n exprNum) LaTeX() string  { return n.render(renderLaTeX) }
func (n exprNum) render(mode renderMode) string {
	return ratString(n.v, mode)
}

func (s exprSym) String() string           { return axisLabels[s.axis] }
func (s exprSym) LaTeX() string            { return axisLabels[s.axis] }
func (s exprSym) render(renderMode) string { return axisLabels[s.axis] }

func (p exprPow) String() string { return p.render(renderText) }
func (p exprPow) LaTeX() string  { return p.render(renderLaTeX) }
func (p exprPow) render(mode renderMode) string {
	base := p.base.render(mode)
	if !isAtom(p.base) {
		base = "(" + base + ")"
	}
	if mode == renderLaTeX {
		return base + "^{" + strconv.Itoa(p.k) + "}"
	}
	return base + "^" + strconv.Itoa(p.k)
}

func (a exprAdd) String() string { return a.render(renderText) }
func (a exprAdd) LaTeX() string  { return a.render(renderLaTeX) }
func (a exprAdd) render(mode renderMode) string {
	if len(a.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range a.terms {
		neg, abs := signSplit(t, mode)
		switch {
		case i == 0 && neg:
			sb.WriteString("-")
		case i > 0 && neg:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		sb.WriteString(abs)
	}
	return sb.String()
}

func (m exprMul) String() string { return m.render(renderText) }
func (m exprMul) LaTeX() string  { return m.render(renderLaTeX) }
func (m exprMul) render(mode renderMode) string {
	_, s := m.signRender(mode, false)
	return s
}

// signRender renders the product, optionally stripping the sign of a leading
// numeric factor so sums can place it themselves.
func (m exprMul) signRender(mode renderMode, stripSign bool) (neg bool, s string) {
	sep := "*"
	if mode == renderLaTeX {
		sep = " "
	}
	parts := make([]string, 0, len(m.factors))
	one := big.NewRat(1, 1)
	for i, f := range m.factors {
		if num, ok := f.(exprNum); ok && i == 0 && len(m.factors) > 1 {
			v := num.v
			if stripSign && v.Sign() < 0 {
				neg = true
				v = new(big.Rat).Abs(v)
			}
			if v.Cmp(one) == 0 {
				continue
			}
			parts = append(parts, ratString(v, mode))
			continue
		}
		fs := f.render(mode)
		if !isAtom(f) {
			fs = "(" + fs + ")"
		}
		parts = append(parts, fs)
	}
	if len(parts) == 0 {
		return neg, "1"
	}
	return neg, strings.Join(parts, sep)
}

func signSplit(n exprNode, mode renderMode) (bool, string) {
	switch v := n.(type) {
	case exprNum:
		if v.v.Sign() < 0 {
			return true, ratString(new(big.Rat).Abs(v.v), mode)
		}
		return false, ratString(v.v, mode)
	case exprMul:
		return v.signRender(mode, true)
	default:
		return false, n.render(mode)
	}
}

// isAtom reports whether the node renders without needing parentheses inside
// a product or power.
func isAtom(n exprNode) bool {
	switch v := n.(type) {
	case exprSym, exprPow:
		return true
	case exprNum:
		return v.v.Sign() >= 0 && v.v.IsInt()
	default:
		return false
	}
}
