package markov

import (
	"math/rand/v2"
	"sort"
)

// pcgStream is the fixed PCG increment seed paired with the caller's seed.
const pcgStream = 0x9e3779b97f4a7c15

// Sampler draws successors according to their stored frequencies. Draws are
// reproducible for a given seed. A Sampler is not safe for concurrent use.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a Sampler seeded with seed.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, pcgStream))}
}

// Draw picks one successor of e, successor i with probability
// Frequency_i. Frequencies are used as stored, without normalization; when
// they sum to slightly less than 1 and the draw lands past the total, the last
// successor with a non-zero frequency is returned. Draw returns "" only for an
// entry without successors.
//
// The cumulative frequencies are computed once per entry and reused until the
// entry is updated or its Successors slice changes length.
func (s *Sampler) Draw(e *Entry) string {
	if len(e.Successors) == 0 {
		return ""
	}
	cdf := e.cumulative()
	u := s.rng.Float64()
	i := sort.Search(len(cdf), func(i int) bool { return cdf[i] > u })
	if i == len(cdf) {
		i = lastWeighted(e.Successors)
	}
	return e.Successors[i].Next
}

// cumulative returns the running sums of e's frequencies.
func (e *Entry) cumulative() []float64 {
	if len(e.cdf) != len(e.Successors) {
		e.cdf = make([]float64, len(e.Successors))
		var sum float64
		for i, s := range e.Successors {
			sum += s.Frequency
			e.cdf[i] = sum
		}
	}
	return e.cdf
}

func lastWeighted(succ []Successor) int {
	for i := len(succ) - 1; i > 0; i-- {
		if succ[i].Frequency > 0 {
			return i
		}
	}
	return 0
}
