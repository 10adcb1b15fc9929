package markov

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// bulkHeaderSize is the size of the little-endian length that prefixes a
// bulk transfer.
const bulkHeaderSize = 8

// writeBulk sends payload as one message: its length as 8 little-endian
// bytes, then the bytes themselves.
func writeBulk(w io.Writer, payload []byte) error {
	var hdr [bulkHeaderSize]byte
	binary.LittleEndian.PutUint64(hdr[:], uint64(len(payload)))
	if err := writeFull(w, hdr[:]); err != nil {
		return fmt.Errorf("bulk header: %w", err)
	}
	if err := writeFull(w, payload); err != nil {
		return fmt.Errorf("bulk payload: %w", err)
	}
	return nil
}

// writeFull writes all of b, resuming after short writes. It stops on any
// other error and on a write that makes no progress.
func writeFull(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		b = b[n:]
		if err != nil && !errors.Is(err, io.ErrShortWrite) {
			return err
		}
		if n == 0 {
			return io.ErrNoProgress
		}
	}
	return nil
}

// readBulk receives one message sent by writeBulk. io.ReadFull resumes after
// short reads; a stream that ends early is io.ErrUnexpectedEOF.
func readBulk(r io.Reader) ([]byte, error) {
	var hdr [bulkHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("bulk header: %w", err)
	}
	size := binary.LittleEndian.Uint64(hdr[:])
	if size > math.MaxInt {
		return nil, fmt.Errorf("bulk transfer of %d bytes", size)
	}
	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("bulk payload: %w", err)
	}
	return payload, nil
}
