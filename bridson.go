package pointsample

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"
)

// Limits bound Bridson generation for parameters we don't trust.
// There is no way to turn a limit off: a field of 0 or less takes
// the DefaultLimits value.
type Limits struct {
	// MaxPoints is the most points (active or finalized) that may be
	// generated before we give up with ErrResourceExhausted.
	MaxPoints int

	// MaxRejections is how many times a single annulus point may be redrawn
	// for falling outside the domain before the attempt counts as a failed
	// candidate. Without this a domain that the annulus can't reach (ie. r larger
	// than the domain diagonal) would spin forever.
	MaxRejections int
}

// DefaultLimits returns reasonable Limits.
func DefaultLimits() *Limits {
	return &Limits{MaxPoints: 100000, MaxRejections: 1000}
}

// withDefaults returns a copy of l with unset fields (or a nil l) filled
// from DefaultLimits.
func (l *Limits) withDefaults() *Limits {
	out := DefaultLimits()
	if l == nil {
		return out
	}
	if l.MaxPoints > 0 {
		out.MaxPoints = l.MaxPoints
	}
	if l.MaxRejections > 0 {
		out.MaxRejections = l.MaxRejections
	}
	return out
}

// BridsonSample generates a Poisson-disk sample where every pair of points
// is at least minDist apart.
//
// We seed a single random active point. While active points remain, one is
// picked at random & up to numCandidates points are drawn from the annulus
// [minDist, 2*minDist) around it. The first candidate at least minDist from
// every generated point becomes active. If none pass the reference point is
// finalized: appended to the result & dropped from the active set.
// The result is in finalization order.
func BridsonSample(rng *rand.Rand, minDist float64, numCandidates int, domain Domain, limits *Limits) (Sample, error) {
	if rng == nil {
		return nil, errors.Wrap(ErrInvalidParameter, "nil rng")
	}
	if !(minDist > 0) || math.IsInf(minDist, 0) {
		return nil, errors.Wrapf(ErrInvalidParameter, "minDist %g", minDist)
	}
	if numCandidates < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "numCandidates %d", numCandidates)
	}
	if err := domain.Validate(); err != nil {
		return nil, err
	}
	limits = limits.withDefaults()

	g, err := newGrid(domain, minDist, limits.MaxPoints)
	if err != nil {
		return nil, err
	}

	first := domain.randomPoint(rng)
	logf("bridson: first point (%f, %f)", first.X, first.Y)

	active := []Point{first}
	g.insert(first)
	generated := 1

	points := Sample{}
	for len(active) > 0 {
		ri := rng.Intn(len(active))
		ref := active[ri]

		found := false
		for i := 0; i < numCandidates; i++ {
			candidate, ok := annulusPoint(rng, ref, minDist, domain, limits.MaxRejections)
			if !ok || g.near(candidate, minDist) {
				continue
			}

			if generated >= limits.MaxPoints {
				return nil, errors.Wrapf(ErrResourceExhausted, "more than %d points at min distance %g", limits.MaxPoints, minDist)
			}

			g.insert(candidate)
			active = append(active, candidate)
			generated++
			found = true
			break
		}

		if !found {
			points = append(points, ref)
			essentials.UnorderedDelete(&active, ri)
		}
	}

	logf("bridson: placed %d points at min distance %g", len(points), minDist)
	return points, nil
}

// annulusPoint picks a point at a random angle & a random distance in [r, 2r)
// from ref, redrawing anything outside of the domain.
// Returns false if more than maxRejections redraws were needed.
func annulusPoint(rng *rand.Rand, ref Point, r float64, domain Domain, maxRejections int) (Point, bool) {
	for tries := 0; tries <= maxRejections; tries++ {
		theta := rng.Float64() * 2 * math.Pi
		dist := r + rng.Float64()*r

		p := Point{
			X: ref.X + math.Cos(theta)*dist,
			Y: ref.Y + math.Sin(theta)*dist,
		}
		if domain.Contains(p) {
			return p, true
		}
	}
	return Point{}, false
}
