package markov

import (
	"bytes"
	"context"
	"errors"
	"os"
	"slices"
	"strings"
	"testing"
)

func TestTrainSentences(t *testing.T) {
	tbl, err := TrainString("The cat sat. The dog ran.", 0)
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	if tbl.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", tbl.Len())
	}
	the, _ := tbl.Get("the")
	if len(the.Successors) != 2 ||
		the.Successors[0] != (Successor{"cat", 0.5}) ||
		the.Successors[1] != (Successor{"dog", 0.5}) {
		t.Fatalf("the: %+v", the.Successors)
	}
	dot, _ := tbl.Get(".")
	if len(dot.Successors) != 1 || dot.Successors[0] != (Successor{"the", 1}) || dot.Count != 2 {
		t.Fatalf(".: %+v", dot)
	}
	for _, w := range []string{"sat", "ran"} {
		e, ok := tbl.Get(w)
		if !ok || e.Successors[0].Next != "." {
			t.Fatalf("%s: %+v", w, e)
		}
	}
}

func TestTabulate(t *testing.T) {
	input, err := os.ReadFile("testdata/harbour.txt")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	tabulate := func(multi bool) *Table {
		var out bytes.Buffer
		opts := Options{Multiprocess: multi}
		if err := Tabulate(context.Background(), bytes.NewReader(input), &out, opts); err != nil {
			t.Fatalf("tabulate (multiprocess=%v): %v", multi, err)
		}
		tbl, err := ReadCSV(&out)
		if err != nil {
			t.Fatalf("tabulate (multiprocess=%v) wrote an invalid table: %v", multi, err)
		}
		return tbl
	}
	single, multi := tabulate(false), tabulate(true)
	if err := sameTable(single, multi, 1.2e-5); err != nil {
		t.Fatalf("pipeline differs from single process: %v", err)
	}
	if !slices.Equal(wordOrder(single), wordOrder(multi)) {
		t.Fatalf("pipeline writes rows in a different order")
	}
	if err := sameTable(trainFile(t, "testdata/harbour.txt"), single, 6e-6); err != nil {
		t.Fatalf("tabulated table differs from Train: %v", err)
	}
}

func TestTabulateErrors(t *testing.T) {
	cases := map[string]struct {
		input string
		kind  Kind
	}{
		"empty":     {"", KindInvalidText},
		"no words":  {" ,;- ", KindInvalidText},
		"long word": {"a " + strings.Repeat("x", 100), KindInvalidText},
	}
	for name, c := range cases {
		for _, multi := range []bool{false, true} {
			var out bytes.Buffer
			err := Tabulate(context.Background(), strings.NewReader(c.input), &out, Options{Multiprocess: multi})
			if KindOf(err) != c.kind {
				t.Fatalf("%s (multiprocess=%v): err = %v, want %v", name, multi, err, c.kind)
			}
			if out.Len() != 0 {
				t.Fatalf("%s (multiprocess=%v): wrote %q", name, multi, out.String())
			}
		}
	}
}

func TestTabulateMaxWordLength(t *testing.T) {
	opts := Options{MaxWordLength: 3}
	err := Tabulate(context.Background(), strings.NewReader("cat dogs"), &bytes.Buffer{}, opts)
	if !errors.Is(err, ErrInvalidText) {
		t.Fatalf("err = %v, want ErrInvalidText", err)
	}
}

func TestTabulateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, multi := range []bool{false, true} {
		err := Tabulate(ctx, strings.NewReader("a b c"), &bytes.Buffer{}, Options{Multiprocess: multi})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("multiprocess=%v: err = %v, want context.Canceled", multi, err)
		}
	}
}

func BenchmarkTrain(b *testing.B) {
	input, err := os.ReadFile("testdata/harbour.txt")
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	for b.Loop() {
		if _, err := Train(bytes.NewReader(input), 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTabulatePipeline(b *testing.B) {
	input, err := os.ReadFile("testdata/harbour.txt")
	if err != nil {
		b.Fatal(err)
	}
	opts := Options{Multiprocess: true}
	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	for b.Loop() {
		if err := Tabulate(context.Background(), bytes.NewReader(input), &bytes.Buffer{}, opts); err != nil {
			b.Fatal(err)
		}
	}
}
