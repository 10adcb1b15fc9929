package markov

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
)

// Tokenizer turns a stream of runes into word succession pairs.
//
// Runes are fed one at a time with WriteRune. Whenever a word closes, the
// pair (previous word, word) is passed to emit. A sentence terminator closes
// the word before it and is emitted as a word of its own, so "sat." yields
// (prev, "sat") and ("sat", "."), and "." becomes the predecessor of the next
// word. Close flushes the last word and emits the pair (last, first) that
// links the end of the text back to its start.
type Tokenizer struct {
	maxLen int
	emit   func(word, next string)

	cur    []rune // word being accumulated
	prev   string // last closed word, "" before the first one
	first  string // first word of the stream
	closed bool
}

// NewTokenizer returns a Tokenizer accepting words of at most maxLen runes
// (DefaultMaxWordLength when maxLen <= 0) and reporting pairs to emit.
func NewTokenizer(maxLen int, emit func(word, next string)) *Tokenizer {
	if maxLen <= 0 {
		maxLen = DefaultMaxWordLength
	}
	return &Tokenizer{
		maxLen: maxLen,
		emit:   emit,
		cur:    make([]rune, 0, maxLen),
	}
}

// WriteRune feeds one rune. It fails with ErrInvalidText when the current
// word would grow past the length limit.
func (t *Tokenizer) WriteRune(r rune) error {
	switch {
	case len(t.cur) > 0 && (isSeparator(r) || isTerminator(r) || r == '\''):
		// the apostrophe stays with the word it ends
		if r == '\'' {
			if err := t.push(r); err != nil {
				return err
			}
		}
		t.closeWord(r)
	case isSeparator(r) || isDropped(r):
	default:
		// a terminator with nothing before it is kept as an ordinary rune
		return t.push(unicode.ToLower(r))
	}
	return nil
}

// Close flushes the pending word and emits the pair linking the last word to
// the first. A stream without any word is ErrInvalidText. Close is idempotent.
func (t *Tokenizer) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if len(t.cur) > 0 {
		t.closeWord(0)
	}
	if t.prev == "" {
		return fmt.Errorf("%w: no words", ErrInvalidText)
	}
	t.emit(t.prev, t.first)
	return nil
}

// First returns the first word seen, or "" if none has closed yet.
func (t *Tokenizer) First() string { return t.first }

func (t *Tokenizer) push(r rune) error {
	if len(t.cur) == t.maxLen {
		return fmt.Errorf("%w: word %q exceeds %d characters", ErrInvalidText, string(t.cur), t.maxLen)
	}
	t.cur = append(t.cur, r)
	return nil
}

// closeWord ends the current word; by is the rune that closed it.
func (t *Tokenizer) closeWord(by rune) {
	word := string(t.cur)
	t.cur = t.cur[:0]

	// The first word only seeds prev and first. A terminator right after it
	// is not recorded.
	if t.prev == "" {
		t.prev, t.first = word, word
		return
	}

	t.emit(t.prev, word)
	if isTerminator(by) {
		t.prev = string(by)
		t.emit(word, t.prev)
		return
	}
	t.prev = word
}

// Tokenize feeds every rune of r to a new Tokenizer and closes it, returning
// the first word of the text.
func Tokenize(r io.Reader, maxLen int, emit func(word, next string)) (string, error) {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	t := NewTokenizer(maxLen, emit)
	for {
		c, _, err := rr.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if err := t.WriteRune(c); err != nil {
			return "", err
		}
	}
	if err := t.Close(); err != nil {
		return "", err
	}
	return t.First(), nil
}
