package boundary

import (
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
	"github.com/toazbenj/sembas-go/search"
)

// PredictionMode combines several boundaries' predictions into one verdict.
type PredictionMode int

const (
	// Union predicts WithinMode if any boundary in the group predicts
	// WithinMode.
	Union PredictionMode = iota
	// Intersection predicts WithinMode only if every boundary in the
	// group predicts WithinMode.
	Intersection
)

// IsBehindHalfspace reports whether p lies on the inward side of hs —
// i.e. the direction from hs.B to p has a negative component along hs.N.
// A point equal to hs.B is not behind it.
func IsBehindHalfspace(p geometry.Vector, hs sample.Halfspace) bool {
	s := p.Sub(hs.B.P).Normalize()
	return s.Dot(hs.N) < 0
}

// ApproxPrediction predicts p's class from b's k nearest boundary points,
// without querying the classifier. A point is predicted WithinMode only if
// it is behind every one of the k nearest halfspaces.
func ApproxPrediction(p geometry.Vector, b *Boundary, k int) sample.Sample {
	cls := true
	for _, idx := range b.NearestIndices(k, p) {
		if !IsBehindHalfspace(p, b.Get(idx)) {
			cls = false
			break
		}
	}
	return sample.FromClass(p, cls)
}

// Group pairs a set of boundaries with K, the number of nearest halfspaces
// ApproxPrediction consults in each of them. The prediction mode is passed
// separately to ApproxGroupPrediction and the Monte-Carlo volume estimators.
type Group struct {
	Boundaries []*Boundary
	K          int
}

// ApproxGroupPrediction combines each boundary's ApproxPrediction in group
// according to mode.
func ApproxGroupPrediction(mode PredictionMode, p geometry.Vector, group []Group) sample.Sample {
	cls := mode == Intersection

	for _, g := range group {
		for _, b := range g.Boundaries {
			predicted := ApproxPrediction(p, b, g.K).IsWithinMode()
			switch mode {
			case Union:
				if predicted {
					cls = true
					return sample.FromClass(p, cls)
				}
			case Intersection:
				if !predicted {
					cls = false
					return sample.FromClass(p, cls)
				}
			}
		}
	}

	return sample.FromClass(p, cls)
}

func pointCloud(group []Group) []geometry.Vector {
	var cloud []geometry.Vector
	for _, g := range group {
		for _, b := range g.Boundaries {
			for _, hs := range b.All() {
				cloud = append(cloud, hs.B.P)
			}
		}
	}
	return cloud
}

// ApproxMCVolume estimates the volume of the envelope(s) described by group
// using Monte-Carlo sampling over the bounding domain of their boundary
// points, classifying each sample with ApproxGroupPrediction instead of the
// real classifier.
func ApproxMCVolume(mode PredictionMode, group []Group, nSamples int, seed uint64) float64 {
	domain := geometry.NewDomainFromPointCloud(pointCloud(group))
	mc := search.NewMonteCarloSearch(domain, seed)

	var withinCount int
	for i := 0; i < nSamples; i++ {
		if ApproxGroupPrediction(mode, mc.Sample(), group).IsWithinMode() {
			withinCount++
		}
	}

	ratio := float64(withinCount) / float64(nSamples)
	return ratio * mc.Domain().Volume()
}

// ApproxMCVolumeIntersection estimates the volumes of group1-only,
// group2-only, and their intersection, all in one Monte-Carlo pass over
// their shared bounding domain.
func ApproxMCVolumeIntersection(group1, group2 []Group, nSamples int, seed uint64) (intersection, only1, only2 float64) {
	domain := geometry.NewDomainFromPointCloud(append(pointCloud(group1), pointCloud(group2)...))
	mc := search.NewMonteCarloSearch(domain, seed)

	var bothCount, only1Count, only2Count int
	for i := 0; i < nSamples; i++ {
		p := mc.Sample()
		in1 := ApproxGroupPrediction(Union, p, group1).IsWithinMode()
		in2 := ApproxGroupPrediction(Union, p, group2).IsWithinMode()
		switch {
		case in1 && in2:
			bothCount++
		case in1:
			only1Count++
		case in2:
			only2Count++
		}
	}

	vol := mc.Domain().Volume()
	n := float64(nSamples)
	return (float64(bothCount) / n) * vol, (float64(only1Count) / n) * vol, (float64(only2Count) / n) * vol
}
