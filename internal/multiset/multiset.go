// Package multiset implements the exact combinatorics behind Hermite tensor
// enumeration: factorials, multinomial counts, and multiset combinations and
// permutations over the three axis labels.
package multiset

import "math/big"

// Counts is a per-axis occurrence triple (x, y, z). The sum of the counts is
// the tensor rank of the index it describes.
type Counts [3]int

// Total returns the rank represented by the counts.
func (c Counts) Total() int { return c[0] + c[1] + c[2] }

// Factorial returns n! as an arbitrary-precision integer. n must be
// non-negative.
func Factorial(n int) *big.Int {
	return new(big.Int).MulRange(1, int64(n))
}

// Multinomial returns n!/(c0!*c1!*c2!), the number of distinct orderings of
// a multiset with the given per-axis counts.
func Multinomial(c Counts) *big.Int {
	out := Factorial(c.Total())
	for _, ci := range c {
		out.Quo(out, Factorial(ci))
	}
	return out
}

// Multichoose returns the number of distinct multisets of size n drawn from
// d symbols, C(d+n-1, n).
func Multichoose(d, n int) *big.Int {
	return new(big.Int).Binomial(int64(d+n-1), int64(n))
}

// Combinations enumerates every count triple with total n over the first d
// axes, in canonical order (descending x count, then descending y count).
// Axes beyond d always carry a zero count.
func Combinations(n, d int) []Counts {
	var out []Counts
	for ax := n; ax >= 0; ax-- {
		rest := n - ax
		if d < 2 {
			if rest == 0 {
				out = append(out, Counts{ax, 0, 0})
			}
			continue
		}
		for ay := rest; ay >= 0; ay-- {
			az := rest - ay
			if d < 3 && az != 0 {
				continue
			}
			out = append(out, Counts{ax, ay, az})
		}
	}
	return out
}

// Permutations materializes every distinct ordering of the multiset described
// by c, as strings over the given labels, in lexicographic order. The empty
// multiset yields the single empty string.
//
// The result has exactly Multinomial(c) elements.
func Permutations(c Counts, labels [3]byte) []string {
	n := c.Total()
	out := make([]string, 0, 1)
	buf := make([]byte, 0, n)

	var walk func()
	walk = func() {
		if len(buf) == n {
			out = append(out, string(buf))
			return
		}
		for i := 0; i < 3; i++ {
			if c[i] == 0 {
				continue
			}
			c[i]--
			buf = append(buf, labels[i])
			walk()
			buf = buf[:len(buf)-1]
			c[i]++
		}
	}
	walk()
	return out
}
