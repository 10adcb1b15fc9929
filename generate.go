package markov

import (
	"bufio"
	"fmt"
	"io"
)

// Generate writes count words drawn from t to w, each one a successor of the
// word before it, starting after prev.
//
// When prev is empty the walk starts after a sentence terminator present in
// t, picked uniformly at random; a table without any is ErrInvalidTable. A
// prev that t does not contain is ErrInvalidOptionArgument.
//
// Output rules: the first letter of a word following a terminator is
// upper-cased, and words are separated by one space except that terminators
// attach to the word before them. No trailing newline is written.
func Generate(w io.Writer, t *Table, prev string, count int, s *Sampler) error {
	if prev == "" {
		var err error
		if prev, err = startWord(t, s); err != nil {
			return err
		}
	} else if _, ok := t.Get(prev); !ok {
		return &Error{Kind: KindInvalidOptionArgument, Arg: "-w", Err: fmt.Errorf("word %q not in table", prev)}
	}

	bw := bufio.NewWriter(w)
	for i := range count {
		e, ok := t.Get(prev)
		if !ok {
			return fmt.Errorf("%w: word %q has no entry", ErrInvalidTable, prev)
		}
		word := s.Draw(e)
		if word == "" {
			return fmt.Errorf("%w: word %q has no successors", ErrInvalidTable, prev)
		}

		out := word
		if isTerminalWord(prev) {
			out = capitalize(word)
		}
		if i > 0 && !isTerminalWord(word) {
			bw.WriteByte(' ')
		}
		bw.WriteString(out)
		prev = word
	}
	return bw.Flush()
}

// startWord picks a terminator present in t, trying them in random order.
func startWord(t *Table, s *Sampler) (string, error) {
	for _, i := range s.rng.Perm(len(terminators)) {
		if _, ok := t.Get(terminators[i]); ok {
			return terminators[i], nil
		}
	}
	return "", fmt.Errorf("%w: no sentence terminator to start from", ErrInvalidTable)
}
