package markov

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// Train builds a Table from the text read from r. Consecutive words are
// inserted in reading order, then the pair linking the last word back to the
// first. Words longer than maxWordLength runes (DefaultMaxWordLength when
// maxWordLength <= 0) fail with ErrInvalidText.
func Train(r io.Reader, maxWordLength int) (*Table, error) {
	t := NewTable()
	if _, err := Tokenize(r, maxWordLength, t.Insert); err != nil {
		return nil, err
	}
	return t, nil
}

// TrainString is Train over a string.
func TrainString(text string, maxWordLength int) (*Table, error) {
	return Train(strings.NewReader(text), maxWordLength)
}

// Tabulate reads text from r and writes its succession table to w as CSV.
//
// In single-process mode the table is built and written in place. With
// opts.Multiprocess the work is split over the three pipeline stages and the
// writer works on a copy decoded from the aggregator's wire buffer.
func Tabulate(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	if opts.Multiprocess {
		return runPipeline(ctx, r, tabulateStages(w, opts), opts.Logger)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	t, err := Train(r, opts.MaxWordLength)
	if err != nil {
		return err
	}
	opts.Logger.Debug("table built", "entries", t.Len(), "buckets", t.Size())
	return t.WriteCSV(w)
}

func tabulateStages(w io.Writer, opts Options) stages {
	return stages{
		name: "tabulate",
		read: func(src io.Reader, dst *bufio.Writer) error {
			if err := copyRunes(dst, src); err != nil {
				return err
			}
			// explicit end marker, closes a pending word like end of stream
			_, err := dst.WriteRune(0)
			return err
		},
		aggregate: func(src *bufio.Reader) (*Table, error) {
			return Train(src, opts.MaxWordLength)
		},
		emit: func(t *Table) error {
			return t.WriteCSV(w)
		},
	}
}

// copyRunes forwards src to dst one rune at a time.
func copyRunes(dst *bufio.Writer, src io.Reader) error {
	rr, ok := src.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(src)
	}
	for {
		r, _, err := rr.ReadRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := dst.WriteRune(r); err != nil {
			return err
		}
	}
}
