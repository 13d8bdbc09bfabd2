package hermitego

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hermitego/algebra"
	"github.com/hupe1980/hermitego/internal/multiset"
)

// TensorEntry is one distinct component of a Hermite tensor: its polynomial
// value and the equivalence set of index strings that map to it.
type TensorEntry struct {
	// Value is the component polynomial in the backend's canonical form.
	Value algebra.Polynomial
	// Indices holds every distinct ordering of the component's index
	// multiset, sorted lexicographically. Its length is the multinomial
	// coefficient of the per-axis counts.
	Indices []string
}

// MarshalJSON renders the entry with the polynomial in its string form.
func (e TensorEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value   string   `json:"value"`
		Indices []string `json:"indices"`
	}{
		Value:   e.Value.String(),
		Indices: e.Indices,
	})
}

// TensorMap maps canonical index strings (labels sorted in axis order) to
// the distinct components of a rank-n Hermite tensor.
//
// For rank n and dimension D it has C(D+n-1, n) entries, and the entries'
// equivalence sets partition all D^n ordered index strings.
type TensorMap map[string]TensorEntry

// Keys returns the canonical index strings in sorted order.
func (m TensorMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TotalComponents returns the sum of all equivalence-set sizes, i.e. the
// number of ordered index strings the map accounts for.
func (m TensorMap) TotalComponents() int {
	total := 0
	for _, e := range m {
		total += len(e.Indices)
	}
	return total
}

// HT enumerates the distinct components of the rank-n Hermite tensor.
//
// Each canonical index (the multiset of axis labels, sorted) appears once,
// with its polynomial value and the full set of index permutations that
// share it.
//
// Defaults: dimension 2, probabilist's normalization, default backend,
// sequential enumeration. Fails with *DomainError if rank is negative or
// the configured dimension is outside [1,3].
func HT(rank int, optFns ...Option) (TensorMap, error) {
	o := applyOptions(optFns)
	if rank < 0 {
		return nil, newDomainError("rank", rank, "non-negative")
	}
	if o.dimension < 1 || o.dimension > 3 {
		return nil, newDomainError("dimension", o.dimension, "in [1, 3]")
	}

	o.logger.WithRank(rank).WithDimension(o.dimension).WithBackend(o.backend.Name()).
		Debug("enumerating hermite tensor", "normalization", o.norm.String(), "parallelism", o.parallelism)

	combos := multiset.Combinations(rank, o.dimension)
	out := make(TensorMap, len(combos))

	if o.parallelism > 1 {
		var mu sync.Mutex
		g := new(errgroup.Group)
		g.SetLimit(o.parallelism)
		for _, c := range combos {
			c := c
			g.Go(func() error {
				key, entry := buildEntry(o.backend, c, o.norm)
				mu.Lock()
				out[key] = entry
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait() // component builds cannot fail
		return out, nil
	}

	for _, c := range combos {
		key, entry := buildEntry(o.backend, c, o.norm)
		out[key] = entry
	}
	return out, nil
}

// buildEntry computes one canonical component: the key (sorted index), the
// assembled polynomial, and the materialized permutation set.
func buildEntry(b algebra.Backend, c multiset.Counts, norm Normalization) (string, TensorEntry) {
	return canonicalKey(c), TensorEntry{
		Value:   assemble(b, c, norm),
		Indices: multiset.Permutations(c, axisBytes),
	}
}

// canonicalKey is the sorted index string for a count triple: x's, then
// y's, then z's.
func canonicalKey(c multiset.Counts) string {
	var sb strings.Builder
	sb.Grow(c.Total())
	for i, cnt := range c {
		for j := 0; j < cnt; j++ {
			sb.WriteByte(axisBytes[i])
		}
	}
	return sb.String()
}
