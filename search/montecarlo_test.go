package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toazbenj/sembas-go/geometry"
)

func TestMonteCarloSearchStaysWithinDomain(t *testing.T) {
	domain := geometry.Normalized(5)
	mc := NewMonteCarloSearch(domain, 42)

	for i := 0; i < 200; i++ {
		p := mc.Sample()
		assert.True(t, domain.Contains(p))
	}
}

func TestMonteCarloSearchIsReproducible(t *testing.T) {
	domain := geometry.Normalized(4)
	a := NewMonteCarloSearch(domain, 7)
	b := NewMonteCarloSearch(domain, 7)

	for i := 0; i < 20; i++ {
		pa := a.Sample()
		pb := b.Sample()
		assert.True(t, pa.Equal(pb, 0))
	}
}

func TestMonteCarloSearchZeroSeedIsDeterministicDefault(t *testing.T) {
	domain := geometry.Normalized(3)
	a := NewMonteCarloSearch(domain, 0)
	b := NewMonteCarloSearch(domain, 0)

	assert.True(t, a.Sample().Equal(b.Sample(), 0))
}
