package markov

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// WriteCSV writes t as a CSV table, one record per entry:
//
//	word,next_1,freq_1,...,next_k,freq_k
//
// with frequencies printed to five decimals.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	var record []string
	for e := range t.Entries() {
		record = append(record[:0], e.Word)
		for _, s := range e.Successors {
			record = append(record, s.Next, strconv.FormatFloat(s.Frequency, 'f', csvFreqPrec, 64))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV replaces the contents of t with the CSV table read from r and
// validates every row. Spaces inside cells are ignored and blank lines are
// skipped. A row is rejected with ErrInvalidTable when it is malformed, when
// a frequency is outside [0,1], or when its frequencies do not sum to 1 at
// two decimals. On error t is left empty.
func (t *Table) ReadCSV(r io.Reader) (err error) {
	t.reset()
	defer func() {
		if err != nil {
			t.reset()
		}
	}()
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTable, err)
		}
		row, _ := cr.FieldPos(0)
		for i := range record {
			record[i] = strings.ReplaceAll(record[i], " ", "")
		}
		e, err := parseEntry(record)
		if err != nil {
			return fmt.Errorf("%w: row %d: %v", ErrInvalidTable, row, err)
		}
		if err := checkDistribution(e); err != nil {
			return fmt.Errorf("%w: row %d: %v", ErrInvalidTable, row, err)
		}
		if err := t.add(e); err != nil {
			return fmt.Errorf("%w: row %d: %v", ErrInvalidTable, row, err)
		}
	}
}

// ReadCSV reads and validates a CSV table from r into a new Table.
func ReadCSV(r io.Reader) (*Table, error) {
	t := NewTable()
	if err := t.ReadCSV(r); err != nil {
		return nil, err
	}
	return t, nil
}

// checkDistribution requires every frequency of e to lie in [0,1] and their
// sum to round to 1 at two decimals.
func checkDistribution(e *Entry) error {
	var sum float64
	for _, s := range e.Successors {
		if !(s.Frequency >= 0 && s.Frequency <= 1) {
			return fmt.Errorf("frequency %v of %q after %q out of range", s.Frequency, s.Next, e.Word)
		}
		sum += s.Frequency
	}
	if math.Round(sum*100) != 100 {
		return fmt.Errorf("frequencies after %q sum to %.5f", e.Word, sum)
	}
	return nil
}
