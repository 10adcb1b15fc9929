package main

import (
	"os"
	"strings"

	"github.com/evaevangelisti/markov"
)

// defaultOutput is the output file name, before its extension, when -o is
// not given.
const defaultOutput = "output"

// withExtension appends ext to name unless name already ends with it.
func withExtension(name, ext string) string {
	if strings.HasSuffix(name, ext) {
		return name
	}
	return name + ext
}

// openInput opens the input file name, appending ext when missing.
func openInput(name, ext string) (*os.File, string, error) {
	if name == "" {
		return nil, "", &markov.Error{Kind: markov.KindMissingParameter, Arg: "input_file"}
	}
	name = withExtension(name, ext)
	f, err := os.Open(name)
	if err != nil {
		return nil, name, &markov.Error{Kind: markov.KindInvalidParameter, Arg: name, Err: err}
	}
	return f, name, nil
}

// createOutput creates or truncates the output file name, appending ext when
// missing. An empty name means defaultOutput.
func createOutput(name, ext string) (*os.File, string, error) {
	if name == "" {
		name = defaultOutput
	}
	name = withExtension(name, ext)
	f, err := os.Create(name)
	if err != nil {
		return nil, name, &markov.Error{Kind: markov.KindInvalidParameter, Arg: name, Err: err}
	}
	return f, name, nil
}
