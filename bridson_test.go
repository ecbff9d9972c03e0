package pointsample_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/pointsample"
)

// naiveBridson checks every candidate against every generated point, drawing
// random numbers & ordering the active set exactly as BridsonSample does.
func naiveBridson(rng *rand.Rand, r float64, numCandidates int, d pointsample.Domain) pointsample.Sample {
	active := []pointsample.Point{pointsample.Pt(rng.Float64()*d.Width, rng.Float64()*d.Height)}
	points := pointsample.Sample{}

	for len(active) > 0 {
		ri := rng.Intn(len(active))
		ref := active[ri]

		found := false
		for i := 0; i < numCandidates && !found; i++ {
			var c pointsample.Point
			ok := false
			for tries := 0; tries <= 1000; tries++ {
				theta := rng.Float64() * 2 * math.Pi
				dist := r + rng.Float64()*r
				c = pointsample.Pt(ref.X+math.Cos(theta)*dist, ref.Y+math.Sin(theta)*dist)
				if d.Contains(c) {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}

			valid := true
			for _, p := range append(points.Points(), active...) {
				if pointsample.Distance(p, c) < r {
					valid = false
					break
				}
			}
			if valid {
				active = append(active, c)
				found = true
			}
		}

		if !found {
			points = append(points, ref)
			active[ri] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}
	return points
}

func assertMinDistance(t *testing.T, s pointsample.Sample, r float64) {
	t.Helper()
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if d := pointsample.Distance(s[i], s[j]); d < r {
				t.Fatalf("points %d %v and %d %v are %f apart, want >= %f", i, s[i], j, s[j], d, r)
			}
		}
	}
}

func TestBridsonSample(t *testing.T) {
	d := pointsample.Domain{Width: 200, Height: 200}

	s, err := pointsample.BridsonSample(rand.New(rand.NewSource(7)), 20, 10, d, nil)
	require.NoError(t, err)

	// a 200x200 box at r=20 packs dozens of points
	assert.Greater(t, len(s), 24)
	assertMinDistance(t, s, 20)
	for _, p := range s {
		assert.True(t, d.Contains(p), "%v outside %v", p, d)
	}

	// ceiling moves each point by < 1 on each axis
	assertMinDistance(t, s.Quantize(), 20-math.Sqrt2)
}

func TestBridsonMatchesLinearScan(t *testing.T) {
	cases := []struct {
		name string
		r    float64
		k    int
		d    pointsample.Domain
		seed int64
	}{
		{"Square", 20, 10, pointsample.Domain{Width: 200, Height: 200}, 7},
		{"Wide", 15, 20, pointsample.Domain{Width: 400, Height: 90}, 3},
		{"SingleCandidate", 10, 1, pointsample.Domain{Width: 120, Height: 120}, 12},
		{"Fractional", 7.5, 5, pointsample.Domain{Width: 99.5, Height: 61.25}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pointsample.BridsonSample(rand.New(rand.NewSource(tc.seed)), tc.r, tc.k, tc.d, nil)
			require.NoError(t, err)

			want := naiveBridson(rand.New(rand.NewSource(tc.seed)), tc.r, tc.k, tc.d)
			assert.Equal(t, want, got)
		})
	}
}

func TestBridsonFewPoints(t *testing.T) {
	// the annulus around any point in a 30x30 box lies entirely outside of it
	s, err := pointsample.BridsonSample(rand.New(rand.NewSource(1)), 50, 10, pointsample.Domain{Width: 30, Height: 30}, nil)
	require.NoError(t, err)
	assert.Len(t, s, 1)

	s, err = pointsample.BridsonSample(rand.New(rand.NewSource(1)), 60, 10, pointsample.Domain{Width: 100, Height: 100}, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(s), 1)
	assert.LessOrEqual(t, len(s), 9)
	assertMinDistance(t, s, 60)
}

func TestBridsonSingleCandidateTerminates(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		s, err := pointsample.BridsonSample(rand.New(rand.NewSource(seed)), 10, 1, pointsample.Domain{Width: 150, Height: 100}, nil)
		require.NoError(t, err)
		assert.NotEmpty(t, s)
		assertMinDistance(t, s, 10)
	}
}

func TestBridsonDeterministic(t *testing.T) {
	d := pointsample.Domain{Width: 800, Height: 525}
	a, err := pointsample.BridsonSample(rand.New(rand.NewSource(15)), 25, 10, d, nil)
	require.NoError(t, err)
	b, err := pointsample.BridsonSample(rand.New(rand.NewSource(15)), 25, 10, d, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBridsonLimits(t *testing.T) {
	d := pointsample.Domain{Width: 200, Height: 200}

	// too many grid cells to even start
	_, err := pointsample.BridsonSample(rand.New(rand.NewSource(1)), 1, 10, d, &pointsample.Limits{MaxPoints: 50})
	assert.ErrorIs(t, err, pointsample.ErrResourceExhausted)

	// the grid fits but we'd generate ~60 points
	_, err = pointsample.BridsonSample(rand.New(rand.NewSource(7)), 20, 10, d, &pointsample.Limits{MaxPoints: 30, MaxRejections: 1000})
	assert.ErrorIs(t, err, pointsample.ErrResourceExhausted)

	s, err := pointsample.BridsonSample(rand.New(rand.NewSource(7)), 20, 10, d, &pointsample.Limits{MaxPoints: 1000, MaxRejections: 1000})
	require.NoError(t, err)
	assert.NotEmpty(t, s)
}

func TestBridsonErrors(t *testing.T) {
	d := pointsample.Domain{Width: 100, Height: 100}
	rng := rand.New(rand.NewSource(1))

	for _, r := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := pointsample.BridsonSample(rng, r, 10, d, nil)
		assert.ErrorIs(t, err, pointsample.ErrInvalidParameter, "minDist %v", r)
	}

	_, err := pointsample.BridsonSample(rng, 10, 0, d, nil)
	assert.ErrorIs(t, err, pointsample.ErrInvalidParameter)

	_, err = pointsample.BridsonSample(rng, 10, 10, pointsample.Domain{Width: 0, Height: 100}, nil)
	assert.ErrorIs(t, err, pointsample.ErrInvalidDomain)

	_, err = pointsample.BridsonSample(nil, 10, 10, d, nil)
	assert.ErrorIs(t, err, pointsample.ErrInvalidParameter)
}

func TestBridsonZeroLimitsTerminate(t *testing.T) {
	d := pointsample.Domain{Width: 30, Height: 30}

	// the annulus around any point misses the domain entirely
	for _, limits := range []*pointsample.Limits{{}, {MaxPoints: -1, MaxRejections: -1}, nil} {
		s, err := pointsample.BridsonSample(rand.New(rand.NewSource(1)), 50, 1, d, limits)
		require.NoError(t, err)
		assert.Len(t, s, 1)
	}

	// zero MaxPoints still gets the default cap on grid size
	_, err := pointsample.BridsonSample(rand.New(rand.NewSource(1)), 1, 10, pointsample.Domain{Width: 1000, Height: 1000}, &pointsample.Limits{})
	assert.ErrorIs(t, err, pointsample.ErrResourceExhausted)
}
