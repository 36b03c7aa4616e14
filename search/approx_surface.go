package search

import (
	"github.com/toazbenj/sembas-go/adherer"
	"github.com/toazbenj/sembas-go/classifier"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
)

// ApproxSurface refines hs's outward normal by adhering to every cardinal
// neighbor of hs and averaging the resulting halfspaces' normals. The
// average is renormalized to unit length before being returned; a plain
// component-wise average would silently violate the Halfspace normal
// invariant.
func ApproxSurface(d float64, hs sample.Halfspace, factory adherer.Factory, c classifier.Classifier) (sample.Halfspace, []sample.Halfspace, []sample.Sample, error) {
	basis := geometry.NewIdentity(hs.N.Dim())
	cardinals := geometry.CreateCardinals(hs.N, basis)

	var allSamples []sample.Sample
	neighbors := make([]sample.Halfspace, 0, len(cardinals))

	for _, cardinal := range cardinals {
		adh := factory.AdhereFrom(hs, cardinal.Scale(d))
		for adh.GetState().State == adherer.Searching {
			s, err := adh.SampleNext(c)
			if err != nil {
				return sample.Halfspace{}, neighbors, allSamples, err
			}
			allSamples = append(allSamples, s)
		}
		neighbors = append(neighbors, adh.GetState().Halfspace)
	}

	newN := geometry.Zeros(hs.N.Dim())
	for _, n := range neighbors {
		newN = newN.Add(n.N)
	}
	newN = newN.Normalize()

	return sample.NewHalfspace(hs.B, newN), neighbors, allSamples, nil
}
