package algebra

import (
	"math/big"
	"testing"
)

func TestDense_SymbolAndConstant(t *testing.T) {
	b := Dense{}

	if got := b.Symbol("x").String(); got != "x" {
		t.Fatalf("want x, got %s", got)
	}
	if got := b.Constant(big.NewRat(3, 2)).String(); got != "3/2" {
		t.Fatalf("want 3/2, got %s", got)
	}
	if got := b.Constant(nil).String(); got != "0" {
		t.Fatalf("want 0, got %s", got)
	}
}

func TestDense_Arithmetic(t *testing.T) {
	b := Dense{}
	x := b.Symbol("x")
	y := b.Symbol("y")

	// (x + y)^2 = x^2 + 2*x*y + y^2
	sq := b.Pow(b.Add(x, y), 2)
	if got := sq.String(); got != "x^2 + 2*x*y + y^2" {
		t.Fatalf("want x^2 + 2*x*y + y^2, got %s", got)
	}

	// x^3 - 3*x
	p := b.Add(b.Pow(x, 3), b.Scale(x, big.NewRat(-3, 1)))
	if got := p.String(); got != "x^3 - 3*x" {
		t.Fatalf("want x^3 - 3*x, got %s", got)
	}
}

func TestDense_CancellationDropsTerms(t *testing.T) {
	b := Dense{}
	x := b.Symbol("x")

	zero := b.Add(x, b.Scale(x, big.NewRat(-1, 1)))
	if got := zero.String(); got != "0" {
		t.Fatalf("want 0, got %s", got)
	}
	if !b.Equal(zero, b.Constant(nil)) {
		t.Fatalf("x - x should equal 0")
	}
}

func TestDense_EqualAcrossConstructionPaths(t *testing.T) {
	b := Dense{}
	x := b.Symbol("x")

	// (x+1)(x-1) vs x^2 - 1
	lhs := b.Mul(b.Add(x, b.Constant(big.NewRat(1, 1))), b.Add(x, b.Constant(big.NewRat(-1, 1))))
	rhs := b.Add(b.Pow(x, 2), b.Constant(big.NewRat(-1, 1)))
	if !b.Equal(lhs, rhs) {
		t.Fatalf("(x+1)(x-1) should equal x^2 - 1")
	}
	if b.Equal(lhs, x) {
		t.Fatalf("x^2 - 1 should not equal x")
	}
}

func TestDense_LaTeX(t *testing.T) {
	b := Dense{}
	x := b.Symbol("x")

	p := b.Add(b.Pow(x, 3), b.Scale(x, big.NewRat(-3, 2)))
	if got := p.LaTeX(); got != `x^{3} - \frac{3}{2} x` {
		t.Fatalf(`want x^{3} - \frac{3}{2} x, got %s`, got)
	}
}

func TestDense_PanicsOnForeignPolynomial(t *testing.T) {
	b := Dense{}
	e := Expr{}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on foreign polynomial")
		}
	}()
	b.Add(b.Symbol("x"), e.Symbol("x"))
}
