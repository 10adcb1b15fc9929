// Package markov builds first-order word succession tables from text and
// generates pseudo-random text from them.
//
// # Overview
//
// A Table maps every word seen in a corpus to the distribution of the words
// that followed it. Tables are built incrementally: each observed pair
// (word, next) rewrites the probabilities of word's successors so that they
// always describe the text read so far. The last word of a text is linked back
// to the first one, so generation never runs out of successors.
//
// # Tokenization
//
// Words are lower-cased runs of characters separated by whitespace. A small
// set of punctuation characters is dropped, an apostrophe ends the word it is
// attached to (and stays part of it), and the sentence terminators '.', '?'
// and '!' become words of their own.
//
// # Formats
//
// Tables are stored as CSV, one row per word:
//
//	word,next_1,freq_1,next_2,freq_2,...
//
// with frequencies printed to five decimals. Reading a CSV table validates
// every row: frequencies must lie in [0,1] and sum to 1.
//
// Between pipeline stages a table travels in a lighter wire format, one line
// per word and a trailing NUL:
//
//	word next_1 freq_1 next_2 freq_2 ...
//
// The wire decoder checks structure only; it trusts the producer's
// distributions.
//
// # Basic Usage
//
//	tbl, err := markov.Train(strings.NewReader("The cat sat. The dog ran."), 0)
//	if err != nil {
//	    return err
//	}
//	_ = tbl.WriteCSV(os.Stdout)
//
//	// Generate ten words after "the"
//	s := markov.NewSampler(42)
//	_ = markov.Generate(os.Stdout, tbl, "the", 10, s)
//
// # Pipeline Mode
//
// Tabulate and Flatten can run as three concurrent stages (read, aggregate,
// emit) joined by an in-memory byte stream and a single length-prefixed bulk
// transfer. The aggregating stage owns its table; the emitting stage decodes
// its own copy from the transferred wire buffer. The first stage failure
// closes every stream so no stage is left blocked.
package markov
