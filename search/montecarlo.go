package search

import (
	"math/rand"

	"github.com/toazbenj/sembas-go/geometry"
)

// MonteCarloSearch draws uniform points from a Domain using an explicitly
// seeded, deterministic PRNG stream: seed 0 maps to a fixed default rather
// than OS entropy, so a run can always be reproduced.
type MonteCarloSearch struct {
	rng    *rand.Rand
	domain geometry.Domain
}

// NewMonteCarloSearch constructs a MonteCarloSearch over domain, seeded by
// seed (0 maps to a fixed default seed).
func NewMonteCarloSearch(domain geometry.Domain, seed uint64) *MonteCarloSearch {
	return &MonteCarloSearch{rng: rngFromSeed(seed), domain: domain}
}

// Sample draws one point uniformly from the domain.
func (m *MonteCarloSearch) Sample() geometry.Vector {
	n := m.domain.Low().Dim()
	values := make([]float64, n)
	for i := range values {
		values[i] = m.rng.Float64()
	}
	return geometry.NewVector(values...).ComponentMul(m.domain.Dimensions()).Add(m.domain.Low())
}

// Domain returns the domain this search draws from.
func (m *MonteCarloSearch) Domain() geometry.Domain {
	return m.domain
}
