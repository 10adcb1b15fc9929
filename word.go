package markov

import (
	"unicode"
	"unicode/utf8"
)

// Table and format constants
const (
	initialBuckets = 31   // bucket count of a new Table
	maxLoadFactor  = 0.75 // usage/size above this doubles the bucket array
	hashMultiplier = 31

	// DefaultMaxWordLength is the longest word, in runes, accepted by the
	// tokenizer when no other limit is configured.
	DefaultMaxWordLength = 64

	wireFreqPrec = 6 // %f
	csvFreqPrec  = 5 // %.5f
)

// terminators lists the sentence terminators in the order start words are
// drawn from.
var terminators = [...]string{".", "?", "!"}

// hashWord is the polynomial rolling hash h = h*31 + rune over uint32,
// reduced modulo the bucket count. It depends on size, so every resize
// recomputes it.
func hashWord(word string, size int) int {
	var h uint32
	for _, r := range word {
		h = h*hashMultiplier + uint32(r)
	}
	return int(uint64(h) % uint64(size))
}

func isTerminator(r rune) bool { return r == '.' || r == '?' || r == '!' }

func isTerminalWord(word string) bool { return word == "." || word == "?" || word == "!" }

// isSeparator reports whether r separates words. NUL marks the end of a
// pipeline stream and separates like whitespace.
func isSeparator(r rune) bool { return r == 0 || unicode.IsSpace(r) }

// isDropped reports whether r is punctuation removed from inside words.
func isDropped(r rune) bool {
	switch r {
	case ',', ';', ':', '-', '(', ')', '[', ']', '{', '}', '<', '>', '"',
		'/', '\\', '|', '@', '#', '$', '%', '^', '&', '*', '_', '+', '=', '~', '`':
		return true
	}
	return false
}

// capitalize upper-cases the first rune of word.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 || r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
