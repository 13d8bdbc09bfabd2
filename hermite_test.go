package hermitego

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hermitego/algebra"
)

var backends = []algebra.Backend{algebra.Dense{}, algebra.Expr{}}

func TestSVHP_Probabilist(t *testing.T) {
	tests := []struct {
		order int
		want  string
	}{
		{0, "1"},
		{1, "x"},
		{2, "x^2 - 1"},
		{3, "x^3 - 3*x"},
		{6, "x^6 - 15*x^4 + 45*x^2 - 15"},
		{9, "x^9 - 36*x^7 + 378*x^5 - 1260*x^3 + 945*x"},
	}

	for _, b := range backends {
		for _, tt := range tests {
			p, err := SVHP(tt.order, WithBackend(b))
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String(), "backend=%s order=%d", b.Name(), tt.order)
		}
	}
}

func TestSVHP_Physicist(t *testing.T) {
	tests := []struct {
		order int
		want  string
	}{
		{0, "1"},
		{1, "2*x"},
		{2, "4*x^2 - 2"},
		{3, "8*x^3 - 12*x"},
		{6, "64*x^6 - 480*x^4 + 720*x^2 - 120"},
		{9, "512*x^9 - 9216*x^7 + 48384*x^5 - 80640*x^3 + 30240*x"},
	}

	for _, b := range backends {
		for _, tt := range tests {
			p, err := SVHP(tt.order, WithBackend(b), WithNormalization(Physicist))
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String(), "backend=%s order=%d", b.Name(), tt.order)
		}
	}
}

func TestSVHP_OtherAxes(t *testing.T) {
	p, err := SVHP(3, WithAxis(AxisY))
	require.NoError(t, err)
	assert.Equal(t, "y^3 - 3*y", p.String())

	p, err = SVHP(2, WithAxis(AxisZ))
	require.NoError(t, err)
	assert.Equal(t, "z^2 - 1", p.String())
}

func TestSVHP_OrderZeroIgnoresNormalization(t *testing.T) {
	for _, norm := range []Normalization{Probabilist, Physicist} {
		p, err := SVHP(0, WithNormalization(norm))
		require.NoError(t, err)
		assert.Equal(t, "1", p.String(), norm.String())
	}
}

func TestSVHP_BackendsAgree(t *testing.T) {
	de := algebra.Dense{}
	ex := algebra.Expr{}
	for order := 0; order <= 10; order++ {
		pd, err := SVHP(order, WithBackend(de))
		require.NoError(t, err)
		pe, err := SVHP(order, WithBackend(ex))
		require.NoError(t, err)
		assert.Equal(t, pd.String(), pe.String(), "order=%d", order)
	}
}

func TestSVHP_DomainErrors(t *testing.T) {
	tests := []struct {
		name  string
		order int
		opts  []Option
		param string
	}{
		{"NegativeOrder", -1, nil, "order"},
		{"AxisZero", 3, []Option{WithAxis(0)}, "axis"},
		{"AxisTooLarge", 3, []Option{WithAxis(4)}, "axis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := SVHP(tt.order, tt.opts...)
			require.Error(t, err)
			assert.Nil(t, p)

			var de *DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.param, de.Param)
		})
	}
}

func TestSVHP_BackendNameSelection(t *testing.T) {
	// Known name, alias, and the permissive fallback.
	for _, name := range []string{"expr", "symbolic", "dense", "", "bogus"} {
		p, err := SVHP(3, WithBackendName(name))
		require.NoError(t, err, name)
		assert.Equal(t, "x^3 - 3*x", p.String(), name)
	}
}

func BenchmarkSVHP(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := SVHP(12); err != nil {
			b.Fatal(err)
		}
	}
}
