// Command markov tabulates word successions in a text file and generates new
// text from the resulting table.
//
//	markov tabulate [-o FILE] [-m] INPUT_FILE
//	markov flatten [-w WORD] [-o FILE] [-m] TABLE_FILE WORD_COUNT
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/alexflint/go-arg"

	"github.com/evaevangelisti/markov"
)

type tabulateCmd struct {
	Output       string `arg:"-o,--output" placeholder:"FILE" help:"table to write, .csv appended if missing [default: output.csv]"`
	Multiprocess bool   `arg:"-m,--multiprocess" help:"run as a three-stage pipeline"`
	Input        string `arg:"positional" placeholder:"INPUT_FILE" help:"text to tabulate, .txt appended if missing"`
}

type flattenCmd struct {
	Word         *string `arg:"-w,--word" placeholder:"WORD" help:"word to continue from [default: a random sentence terminator]"`
	Output       string  `arg:"-o,--output" placeholder:"FILE" help:"text to write, .txt appended if missing [default: output.txt]"`
	Multiprocess bool    `arg:"-m,--multiprocess" help:"run as a three-stage pipeline"`
	Table        string  `arg:"positional" placeholder:"TABLE_FILE" help:"table to generate from, .csv appended if missing"`
	Count        string  `arg:"positional" placeholder:"WORD_COUNT" help:"number of words to generate"`
}

type cliArgs struct {
	Tabulate *tabulateCmd `arg:"subcommand:tabulate" help:"build a succession table from a text file"`
	Flatten  *flattenCmd  `arg:"subcommand:flatten" help:"generate text from a succession table"`

	Config   string  `arg:"--config" placeholder:"FILE" help:"YAML configuration file"`
	Seed     *uint64 `arg:"--seed" help:"sampler seed [default: time based]"`
	Verbose  bool    `arg:"-v,--verbose" help:"log debug records"`
	Progress bool    `arg:"--progress" help:"show a progress bar while reading input"`
}

func (cliArgs) Description() string {
	return "markov builds first-order word succession tables and generates text from them."
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run executes one command line. Help goes to stdout, logs and the progress
// bar to stderr.
func run(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	var args cliArgs
	p, err := arg.NewParser(arg.Config{Program: "markov", Out: stdout, Exit: func(int) {}}, &args)
	if err != nil {
		return &markov.Error{Kind: markov.KindInternal, Err: err}
	}
	switch err := p.Parse(argv); {
	case errors.Is(err, arg.ErrHelp):
		return p.WriteHelpForSubcommand(stdout, p.SubcommandNames()...)
	case err != nil:
		return parseError(err)
	}

	file, err := loadConfig(args.Config)
	if err != nil {
		return err
	}
	s, err := resolve(file, &args)
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: s.level}))

	switch cmd := p.Subcommand().(type) {
	case *tabulateCmd:
		return runTabulate(ctx, cmd, s, log, stderr)
	case *flattenCmd:
		return runFlatten(ctx, cmd, s, log, stderr)
	default:
		return &markov.Error{Kind: markov.KindMissingCommand}
	}
}

func runTabulate(ctx context.Context, cmd *tabulateCmd, s settings, log *slog.Logger, stderr io.Writer) error {
	in, inName, err := openInput(cmd.Input, ".txt")
	if err != nil {
		return err
	}
	defer in.Close()

	out, outName, err := createOutput(cmd.Output, ".csv")
	if err != nil {
		return err
	}

	opts := s.options(log)
	opts.Multiprocess = opts.Multiprocess || cmd.Multiprocess
	log.Debug("tabulating", "input", inName, "output", outName, "multiprocess", opts.Multiprocess)

	r, done := withProgress(in, s.progress, stderr)
	err = writeOutput(out, func(w io.Writer) error {
		return markov.Tabulate(ctx, r, w, opts)
	})
	done()
	if err != nil {
		return err
	}
	log.Info("tabulation complete", "input", inName, "output", outName)
	return nil
}

func runFlatten(ctx context.Context, cmd *flattenCmd, s settings, log *slog.Logger, stderr io.Writer) error {
	var prev string
	if cmd.Word != nil {
		if *cmd.Word == "" {
			return &markov.Error{Kind: markov.KindMissingOptionArgument, Arg: "-w"}
		}
		prev = *cmd.Word
	}

	in, inName, err := openInput(cmd.Table, ".csv")
	if err != nil {
		return err
	}
	defer in.Close()

	count, err := parseCount(cmd.Count)
	if err != nil {
		return err
	}

	out, outName, err := createOutput(cmd.Output, ".txt")
	if err != nil {
		return err
	}

	opts := s.options(log)
	opts.Multiprocess = opts.Multiprocess || cmd.Multiprocess
	log.Debug("generating", "table", inName, "output", outName, "words", count, "multiprocess", opts.Multiprocess)

	r, done := withProgress(in, s.progress, stderr)
	err = writeOutput(out, func(w io.Writer) error {
		return markov.Flatten(ctx, r, w, prev, count, opts)
	})
	done()
	if err != nil {
		return err
	}
	log.Info("generation complete", "table", inName, "output", outName, "words", count)
	return nil
}

// writeOutput runs write against a buffered f and closes f, reporting the
// first error.
func writeOutput(f *os.File, write func(w io.Writer) error) error {
	bw := bufio.NewWriter(f)
	err := write(bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil && cerr != nil {
		err = &markov.Error{Kind: markov.KindInvalidParameter, Arg: f.Name(), Err: cerr}
	}
	return err
}

// parseCount parses the number of words to generate: decimal digits only.
func parseCount(s string) (int, error) {
	if s == "" {
		return 0, &markov.Error{Kind: markov.KindMissingParameter, Arg: "words_to_generate"}
	}
	if strings.ContainsFunc(s, func(r rune) bool { return r < '0' || r > '9' }) {
		return 0, &markov.Error{Kind: markov.KindInvalidParameter, Arg: s}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &markov.Error{Kind: markov.KindInvalidParameter, Arg: s, Err: errors.Unwrap(err)}
	}
	return n, nil
}

// parseError maps a command line parsing failure to its error kind.
func parseError(err error) error {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, "error processing "); ok {
		name, cause, _ := strings.Cut(rest, ": ")
		return &markov.Error{Kind: markov.KindInvalidOptionArgument, Arg: name, Err: errors.New(cause)}
	}
	for _, m := range []struct {
		prefix string
		kind   markov.Kind
	}{
		{"unknown argument ", markov.KindUnknownOption},
		{"missing value for ", markov.KindMissingOptionArgument},
		{"invalid subcommand: ", markov.KindInvalidCommand},
		{"too many positional arguments at ", markov.KindInvalidParameter},
	} {
		if rest, ok := strings.CutPrefix(msg, m.prefix); ok {
			return &markov.Error{Kind: m.kind, Arg: strings.Trim(rest, "'")}
		}
	}
	return &markov.Error{Kind: markov.KindInvalidParameter, Err: err}
}
