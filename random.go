package pointsample

import (
	"math/rand"

	"github.com/pkg/errors"
)

// RandomSample places exactly `count` points uniformly at random in
// [0, Width) x [0, Height). There is no rejection & no minimum distance.
func RandomSample(rng *rand.Rand, count int, domain Domain) (Sample, error) {
	if rng == nil {
		return nil, errors.Wrap(ErrInvalidParameter, "nil rng")
	}
	if count < 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "count %d", count)
	}
	if err := domain.Validate(); err != nil {
		return nil, err
	}

	points := make(Sample, count)
	for i := range points {
		points[i] = domain.randomPoint(rng)
	}

	logf("random: placed %d points in %gx%g", count, domain.Width, domain.Height)
	return points, nil
}
