package markov

import (
	"bufio"
	"context"
	"io"
)

// Flatten reads a CSV table from r, validating it, and writes count
// generated words to w starting after prev (see Generate for the output rules
// and the meaning of an empty prev).
//
// With opts.Multiprocess the table is parsed by the aggregator stage and the
// generator works on a copy decoded from the wire buffer, without validating
// it again.
func Flatten(ctx context.Context, r io.Reader, w io.Writer, prev string, count int, opts Options) error {
	opts = opts.withDefaults()
	opts.Logger.Debug("sampler seeded", "seed", opts.Seed)
	s := NewSampler(opts.Seed)
	if opts.Multiprocess {
		return runPipeline(ctx, r, flattenStages(w, prev, count, s), opts.Logger)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	t, err := ReadCSV(r)
	if err != nil {
		return err
	}
	opts.Logger.Debug("table loaded", "entries", t.Len(), "buckets", t.Size())
	return Generate(w, t, prev, count, s)
}

func flattenStages(w io.Writer, prev string, count int, s *Sampler) stages {
	return stages{
		name: "flatten",
		// the table is forwarded byte for byte, as ReadCSV sees it in a
		// single process
		read: func(src io.Reader, dst *bufio.Writer) error {
			_, err := io.Copy(dst, src)
			return err
		},
		aggregate: func(src *bufio.Reader) (*Table, error) {
			return ReadCSV(src)
		},
		emit: func(t *Table) error {
			return Generate(w, t, prev, count, s)
		},
	}
}
