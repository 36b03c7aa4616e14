package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
)

func TestFuncAdaptsPlainFunction(t *testing.T) {
	var c Classifier = Func(func(p geometry.Vector) (sample.Sample, error) {
		return sample.FromClass(p, p.At(0) > 0), nil
	})

	result, err := c.Classify(geometry.NewVector(1))
	require.NoError(t, err)
	assert.True(t, result.IsWithinMode())

	result, err = c.Classify(geometry.NewVector(-1))
	require.NoError(t, err)
	assert.False(t, result.IsWithinMode())
}
