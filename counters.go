package markov

import "math"

// observe records one more occurrence of next right after e.Word.
//
// Entries keep only frequencies, not per-successor counts. Each count is
// recovered from the frequency written by the previous update:
//
//	occurrences_i = round(frequency_i × Count)
//
// The successor equal to next (or a new one, at 1) is incremented, every
// frequency is rewritten as occurrences_i / (Count+1), and Count grows by one.
// Recovery is exact while frequency × Count is far from float64 precision
// limits. Beyond that the rounding can drift.
func (e *Entry) observe(next string) {
	n := e.Count
	found := false
	for i := range e.Successors {
		s := &e.Successors[i]
		occ := occurrences(s.Frequency, n)
		if s.Next == next {
			occ++
			found = true
		}
		s.Frequency = occ / float64(n+1)
	}
	if !found {
		e.Successors = append(e.Successors, Successor{Next: next, Frequency: 1 / float64(n+1)})
	}
	e.Count = n + 1
	e.cdf = nil // sampler cache
}

// occurrences recovers an integral occurrence count from a frequency over n
// observations.
func occurrences(frequency float64, n int) float64 {
	return math.Round(frequency * float64(n))
}

// Occurrences returns the occurrence count implied by each successor's
// frequency, in successor order.
func (e *Entry) Occurrences() []int {
	out := make([]int, len(e.Successors))
	for i, s := range e.Successors {
		out[i] = int(occurrences(s.Frequency, e.Count))
	}
	return out
}
