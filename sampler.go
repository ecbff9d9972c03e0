package pointsample

import (
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Method names a sampling strategy.
type Method string

const (
	// Random places points uniformly at random
	Random Method = "random"

	// BestCandidate places points with Mitchell's best candidate algorithm
	BestCandidate Method = "best_candidate"

	// Bridson places points via Poisson-disk sampling with a min distance
	Bridson Method = "bridson"
)

// Methods returns all supported methods.
func Methods() []Method {
	return []Method{Random, BestCandidate, Bridson}
}

// ParseMethod returns the Method for the given name.
// Matching ignores case, and "-" is accepted in place of "_".
func ParseMethod(name string) (Method, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, m := range Methods() {
		if string(m) == norm {
			return m, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidParameter, "unknown method %q", name)
}

// Params are the per-call sampling parameters. An unset field takes the
// default from the Sampler's Config: nil for Count, 0 for the others
// (for which 0 is never valid).
type Params struct {
	// Count of points (Random, BestCandidate), see Int.
	// A count of 0 asks for an empty sample.
	Count *int

	// NumCandidates tried per point (BestCandidate, Bridson)
	NumCandidates int

	// MinDist between points (Bridson)
	MinDist float64
}

// Int returns a pointer to v, for setting Params.Count.
func Int(v int) *int {
	return &v
}

// withDefaults fills unset fields from def
func (p Params) withDefaults(def Params) Params {
	if p.Count == nil {
		p.Count = def.Count
	}
	if p.NumCandidates == 0 {
		p.NumCandidates = def.NumCandidates
	}
	if p.MinDist == 0 {
		p.MinDist = def.MinDist
	}
	return p
}

// Sampler is the single entry point for making samples. It holds on to the
// most recent sample so that it can be plotted & used to colour a mosaic
// without being regenerated.
//
// A Sampler owns its rng, so it is not safe for concurrent use.
type Sampler struct {
	cfg *Config
	rng *rand.Rand

	// Seed actually used for the rng
	Seed int64

	sample Sample
	has    bool
}

// New creates a Sampler from the given config (DefaultConfig if nil).
func New(cfg *Config) (*Sampler, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Sampler{
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(seed)),
		Seed: seed,
	}, nil
}

// Domain returns the rectangle points are sampled in.
func (s *Sampler) Domain() Domain {
	return s.cfg.Domain()
}

// MakeSample generates a new sample with the given method & params, caches it
// and returns it. An empty method uses the configured default.
// On error the previously cached sample (if any) is kept.
func (s *Sampler) MakeSample(method Method, params Params) (Sample, error) {
	if method == "" {
		method = s.cfg.Method
	}
	params = params.withDefaults(s.cfg.Params())
	count := 0
	if params.Count != nil {
		count = *params.Count
	}

	var (
		sample Sample
		err    error
	)

	switch method {
	case Random:
		sample, err = RandomSample(s.rng, count, s.Domain())
	case BestCandidate:
		sample, err = BestCandidateSample(s.rng, count, params.NumCandidates, s.Domain())
	case Bridson:
		sample, err = BridsonSample(s.rng, params.MinDist, params.NumCandidates, s.Domain(), s.cfg.Limits())
	default:
		return nil, errors.Wrapf(ErrInvalidParameter, "unknown method %q", method)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s sample", method)
	}

	if s.cfg.Quantize {
		sample = sample.Quantize()
	}

	s.sample = sample
	s.has = true
	return sample, nil
}

// Current returns the most recently made sample.
// Returns ErrNoSampleAvailable if MakeSample has not yet succeeded.
func (s *Sampler) Current() (Sample, error) {
	if !s.has {
		return nil, ErrNoSampleAvailable
	}
	return s.sample, nil
}
