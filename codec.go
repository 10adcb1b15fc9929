package markov

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// AppendWire appends the wire encoding of t to dst and returns the extended
// buffer. Layout:
//
//	word SP next_1 SP freq_1 [SP next_k SP freq_k ...] LF   (one line per entry)
//	NUL                                                     (end of table)
//
// Entries follow Entries() order; frequencies are printed like %f.
func (t *Table) AppendWire(dst []byte) []byte {
	for e := range t.Entries() {
		dst = append(dst, e.Word...)
		for _, s := range e.Successors {
			dst = append(dst, ' ')
			dst = append(dst, s.Next...)
			dst = append(dst, ' ')
			dst = strconv.AppendFloat(dst, s.Frequency, 'f', wireFreqPrec, 64)
		}
		dst = append(dst, '\n')
	}
	return append(dst, 0)
}

// WriteTo serializes t to w in the wire format (see AppendWire).
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.AppendWire(nil))
	return int64(n), err
}

// ReadFrom replaces the contents of t with a wire-encoded table read from r,
// up to and including its NUL terminator. Readers that are not io.ByteReaders
// are buffered, so bytes after the terminator may be consumed. On error t is
// left empty.
//
// Only the structure is checked. Frequencies are kept exactly as printed and
// are not required to form a distribution; use ReadCSV to validate a table
// from an untrusted source.
func (t *Table) ReadFrom(r io.Reader) (int64, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	var (
		n   int64
		buf []byte
	)
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			t.reset()
			return n, fmt.Errorf("%w: missing end of table", ErrInvalidTable)
		}
		if err != nil {
			t.reset()
			return n, err
		}
		n++
		buf = append(buf, c)
		if c == 0 {
			break
		}
	}
	return n, t.decodeWire(buf)
}

// MarshalBinary implements encoding.BinaryMarshaler with the wire format.
func (t *Table) MarshalBinary() ([]byte, error) {
	return t.AppendWire(nil), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler with the wire format.
func (t *Table) UnmarshalBinary(data []byte) error {
	return t.decodeWire(data)
}

func (t *Table) decodeWire(data []byte) (err error) {
	t.reset()
	defer func() {
		if err != nil {
			t.reset()
		}
	}()
	end := bytes.IndexByte(data, 0)
	if end < 0 {
		return fmt.Errorf("%w: missing end of table", ErrInvalidTable)
	}
	body := data[:end]
	for line := 1; len(body) > 0; line++ {
		nl := bytes.IndexByte(body, '\n')
		if nl < 0 {
			return fmt.Errorf("%w: line %d: missing line terminator", ErrInvalidTable, line)
		}
		fields := strings.Split(string(body[:nl]), " ")
		body = body[nl+1:]

		e, err := parseEntry(fields)
		if err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrInvalidTable, line, err)
		}
		if err := t.add(e); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrInvalidTable, line, err)
		}
	}
	return nil
}

// parseEntry builds an entry from word, next_1, freq_1, ... fields.
// Frequencies are parsed but not range checked.
func parseEntry(fields []string) (*Entry, error) {
	if len(fields) < 3 || len(fields)%2 == 0 {
		return nil, fmt.Errorf("%d fields, want a word and next/frequency pairs", len(fields))
	}
	if !validWord(fields[0]) {
		return nil, fmt.Errorf("invalid word %q", fields[0])
	}
	e := &Entry{
		Word:       fields[0],
		Successors: make([]Successor, 0, len(fields)/2),
	}
	for i := 1; i < len(fields); i += 2 {
		if !validWord(fields[i]) {
			return nil, fmt.Errorf("invalid successor %q of %q", fields[i], e.Word)
		}
		f, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("frequency %q: %v", fields[i+1], err)
		}
		e.Successors = append(e.Successors, Successor{Next: fields[i], Frequency: f})
	}
	e.Count = len(e.Successors)
	return e, nil
}

// validWord reports whether word can be stored in both table formats.
func validWord(word string) bool {
	return word != "" && !strings.ContainsFunc(word, isSeparator)
}

// add links a decoded entry after those already decoded, rejecting a word
// that is already present.
func (t *Table) add(e *Entry) error {
	if _, ok := t.Get(e.Word); ok {
		return fmt.Errorf("duplicate word %q", e.Word)
	}
	t.linkLast(e)
	return nil
}
