/*
Package pointsample generates two dimensional point sets over a rectangle
[0, width] x [0, height] using one of three methods:

  - random: uniform random placement
  - best_candidate: Mitchell's best candidate (greedy blue noise approximation)
  - bridson: Poisson-disk sampling with a guaranteed minimum distance

Samples are intended as sites for plotting (see Animate) & for image mosaics
built from voronoi diagrams (see Mosaic).

	s, err := pointsample.New(&pointsample.Config{Width: 800, Height: 525, Seed: 7, Quantize: true})
	if err != nil {
		panic(err)
	}
	sample, err := s.MakeSample(pointsample.Bridson, pointsample.Params{MinDist: 20, NumCandidates: 10})

Every sampler takes an explicit *rand.Rand so runs are reproducible for a
fixed seed.
*/
package pointsample
