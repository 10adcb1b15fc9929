package markov

import (
	"iter"
	"slices"
)

// Table is a first-order word succession table: a chained hash map from a
// word to the distribution of the words observed right after it.
//
// Buckets hold chains of entries, newest first. The bucket array starts with
// 31 slots and doubles as soon as an insertion pushes the load factor
// (entries/buckets) above 0.75, so after every insertion
//
//	Len()/Size() <= 0.75
//
// The zero Table is empty and ready to use. A Table is not safe for
// concurrent use.
type Table struct {
	buckets [][]*Entry
	usage   int // number of entries
}

// Entry is a word and the distribution of its successors.
//
// Sampling caches the running sums of the frequencies. Replacing or
// resizing Successors invalidates the cache; editing a frequency in place
// does not, so do that only before the entry is first drawn from.
type Entry struct {
	Word       string
	Successors []Successor
	// Count is the number of observations the frequencies were computed
	// from. Entries decoded from a serialized table carry the number of
	// successors instead; the formats do not record it.
	Count int

	cdf []float64 // cumulative frequencies, built lazily by the sampler
}

// Successor is one possible next word and its probability.
type Successor struct {
	Next      string
	Frequency float64
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{buckets: make([][]*Entry, initialBuckets)}
}

func (t *Table) init() {
	if t.buckets == nil {
		t.buckets = make([][]*Entry, initialBuckets)
	}
}

// Insert records one observation of next following word.
//
// A new word gets an entry whose only successor is next at probability 1.
// For a known word, the successor distribution is recomputed to account for
// the extra observation (see Entry.observe).
func (t *Table) Insert(word, next string) {
	e, ok := t.Get(word)
	if !ok {
		e = &Entry{Word: word}
		t.link(e)
	}
	e.observe(next)
}

// Get returns the entry for word.
func (t *Table) Get(word string) (*Entry, bool) {
	if len(t.buckets) == 0 {
		return nil, false
	}
	for _, e := range t.buckets[hashWord(word, len(t.buckets))] {
		if e.Word == word {
			return e, true
		}
	}
	return nil, false
}

// link adds a new entry at the head of its chain. The usage count is bumped
// and the load factor checked before the entry is placed, so the bucket index
// is always computed against the final bucket array.
func (t *Table) link(e *Entry) {
	i := t.grow(e.Word)
	t.buckets[i] = slices.Insert(t.buckets[i], 0, e)
}

// linkLast adds a new entry at the tail of its chain. Decoding links in
// stream order this way, so a decoded table iterates like its source.
func (t *Table) linkLast(e *Entry) {
	i := t.grow(e.Word)
	t.buckets[i] = append(t.buckets[i], e)
}

// grow accounts for one more entry and returns the bucket of word.
func (t *Table) grow(word string) int {
	t.init()
	t.usage++
	if float64(t.usage)/float64(len(t.buckets)) > maxLoadFactor {
		t.resize()
	}
	return hashWord(word, len(t.buckets))
}

// resize doubles the bucket array and moves every entry to its new chain.
// Entries are relinked, not copied, and keep their relative chain order.
func (t *Table) resize() {
	buckets := make([][]*Entry, 2*len(t.buckets))
	for _, chain := range t.buckets {
		for _, e := range chain {
			i := hashWord(e.Word, len(buckets))
			buckets[i] = append(buckets[i], e)
		}
	}
	t.buckets = buckets
}

// Len returns the number of entries.
func (t *Table) Len() int { return t.usage }

// Size returns the number of buckets.
func (t *Table) Size() int {
	if t.buckets == nil {
		return initialBuckets
	}
	return len(t.buckets)
}

// LoadFactor returns Len()/Size().
func (t *Table) LoadFactor() float64 { return float64(t.Len()) / float64(t.Size()) }

// Entries iterates over all entries in bucket order, each chain newest
// first. Serialization uses the same order, and decoding restores it.
func (t *Table) Entries() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, chain := range t.buckets {
			for _, e := range chain {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// reset empties t, keeping nothing of its previous state.
func (t *Table) reset() {
	*t = *NewTable()
}
