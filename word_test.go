package markov

import "testing"

func TestHashWord(t *testing.T) {
	cases := []struct {
		word string
		size int
		want int
	}{
		{"", 31, 0},
		{"a", 31, 97 % 31},
		{"ab", 31, (97*31 + 98) % 31},
		{"Aa", 31, 2112 % 31},
		{"BB", 31, 2112 % 31},
		{"é", 62, 0xe9 % 62},
	}
	for _, c := range cases {
		if got := hashWord(c.word, c.size); got != c.want {
			t.Fatalf("hashWord(%q, %d) = %d, want %d", c.word, c.size, got, c.want)
		}
	}

	// wraps around uint32 instead of going negative
	long := "supercalifragilisticexpialidocious"
	for size := initialBuckets; size < 1<<20; size *= 2 {
		if got := hashWord(long, size); got < 0 || got >= size {
			t.Fatalf("hashWord(%q, %d) = %d out of range", long, size, got)
		}
	}
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"cat":  "Cat",
		"élan": "Élan",
		"x":    "X",
		"":     "",
		"\xff": "\xff",
		"'tis": "'tis",
	}
	for in, want := range cases {
		if got := capitalize(in); got != want {
			t.Fatalf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRuneClasses(t *testing.T) {
	for _, r := range ",;:-()[]{}<>\"/\\|@#$%^&*_+=~`" {
		if !isDropped(r) {
			t.Fatalf("%q should be dropped", r)
		}
	}
	for _, r := range "a.?!'0é" {
		if isDropped(r) {
			t.Fatalf("%q should not be dropped", r)
		}
	}
	for _, r := range " \t\n\r \x00" {
		if !isSeparator(r) {
			t.Fatalf("%q should separate words", r)
		}
	}
	for _, w := range terminators {
		if !isTerminalWord(w) || !isTerminator(rune(w[0])) {
			t.Fatalf("%q should be a terminator", w)
		}
	}
}
