package markov

import (
	"math"
	"slices"
	"testing"
)

func TestObserve(t *testing.T) {
	var e Entry
	e.observe("x")
	if e.Count != 1 || len(e.Successors) != 1 || e.Successors[0].Frequency != 1 {
		t.Fatalf("first observation: %+v", e)
	}

	e.observe("y")
	if e.Successors[0].Frequency != 0.5 || e.Successors[1].Frequency != 0.5 {
		t.Fatalf("after y: %+v", e.Successors)
	}

	e.observe("x")
	want := []Successor{{"x", 2.0 / 3}, {"y", 1.0 / 3}}
	if !slices.Equal(e.Successors, want) {
		t.Fatalf("after x: %+v, want %+v", e.Successors, want)
	}
	if got := e.Occurrences(); !slices.Equal(got, []int{2, 1}) {
		t.Fatalf("Occurrences() = %v", got)
	}
}

func TestObserveMatchesExactCounts(t *testing.T) {
	var e Entry
	exact := map[string]int{}
	for i := range 2000 {
		next := "z"
		switch {
		case i%3 == 0:
			next = "x"
		case i%7 == 0:
			next = "y"
		}
		exact[next]++
		e.observe(next)

		var sum float64
		for _, s := range e.Successors {
			sum += s.Frequency
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("after %d observations frequencies sum to %v", i+1, sum)
		}
	}
	if e.Count != 2000 {
		t.Fatalf("Count = %d", e.Count)
	}
	occ := e.Occurrences()
	for i, s := range e.Successors {
		if occ[i] != exact[s.Next] {
			t.Fatalf("%q: %d occurrences, want %d", s.Next, occ[i], exact[s.Next])
		}
	}
}

func TestObserveKeepsInsertionOrder(t *testing.T) {
	var e Entry
	for _, w := range []string{"c", "a", "b", "a", "c"} {
		e.observe(w)
	}
	var got []string
	for _, s := range e.Successors {
		got = append(got, s.Next)
	}
	if !slices.Equal(got, []string{"c", "a", "b"}) {
		t.Fatalf("successor order = %v", got)
	}
}
