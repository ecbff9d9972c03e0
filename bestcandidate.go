package pointsample

import (
	"math/rand"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// BestCandidateSample places exactly `count` points using Mitchell's best
// candidate algorithm. The first point is placed uniformly at random, every
// subsequent point is the one of `numCandidates` random candidates that is
// furthest from its nearest already placed point. Where candidates tie the
// first one drawn wins.
//
// Nb. although nearest neighbours are found via a k-d tree, each round is
// still numCandidates lookups, so this gets slow past a few thousand points.
func BestCandidateSample(rng *rand.Rand, count, numCandidates int, domain Domain) (Sample, error) {
	if rng == nil {
		return nil, errors.Wrap(ErrInvalidParameter, "nil rng")
	}
	if count < 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "count %d", count)
	}
	if numCandidates < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "numCandidates %d", numCandidates)
	}
	if err := domain.Validate(); err != nil {
		return nil, err
	}

	points := make(Sample, 0, count)
	if count == 0 {
		return points, nil
	}

	first := domain.randomPoint(rng)
	points = append(points, first)
	logf("best candidate: first point (%f, %f)", first.X, first.Y)

	tree := kdtree.New(kdtree.Points{kdPoint(first)}, false)
	for len(points) < count {
		// squared distances order the same as distances, so we skip the sqrt
		best := domain.randomPoint(rng)
		_, bestDist := tree.Nearest(kdPoint(best))

		for i := 1; i < numCandidates; i++ {
			candidate := domain.randomPoint(rng)
			_, dist := tree.Nearest(kdPoint(candidate))
			if dist > bestDist {
				best, bestDist = candidate, dist
			}
		}

		points = append(points, best)
		tree.Insert(kdPoint(best), false)
	}

	logf("best candidate: placed %d points with %d candidates each", len(points), numCandidates)
	return points, nil
}

// kdPoint converts to gonum's k-d tree point
func kdPoint(p Point) kdtree.Point {
	return kdtree.Point{p.X, p.Y}
}
