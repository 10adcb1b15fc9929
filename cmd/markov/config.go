package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/evaevangelisti/markov"
)

// fileConfig is the optional YAML configuration file:
//
//	max_word_length: 64
//	multiprocess: false
//	seed: 0
//	log_level: info
//	progress: false
type fileConfig struct {
	MaxWordLength int    `yaml:"max_word_length"`
	Multiprocess  bool   `yaml:"multiprocess"`
	Seed          uint64 `yaml:"seed"`
	LogLevel      string `yaml:"log_level"`
	Progress      bool   `yaml:"progress"`
}

// settings are the effective settings of a run.
type settings struct {
	maxWordLength int
	multiprocess  bool
	seed          uint64
	level         slog.Level
	progress      bool
}

// loadConfig reads the configuration file at path. An empty path yields the
// zero configuration. Unknown keys are rejected.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, &markov.Error{Kind: markov.KindInvalidParameter, Arg: path, Err: err}
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, &markov.Error{Kind: markov.KindInvalidParameter, Arg: path, Err: err}
	}
	return cfg, nil
}

// resolve merges the file configuration with the flags. Flags win: a seed
// flag replaces the file's seed, -v forces debug logging, and boolean flags
// can switch on what the file leaves off.
func resolve(file fileConfig, args *cliArgs) (settings, error) {
	s := settings{
		maxWordLength: file.MaxWordLength,
		multiprocess:  file.Multiprocess,
		seed:          file.Seed,
		level:         slog.LevelInfo,
		progress:      file.Progress || args.Progress,
	}
	if s.maxWordLength < 0 {
		return s, &markov.Error{Kind: markov.KindInvalidParameter, Arg: "max_word_length"}
	}
	if file.LogLevel != "" {
		if err := s.level.UnmarshalText([]byte(file.LogLevel)); err != nil {
			return s, &markov.Error{Kind: markov.KindInvalidParameter, Arg: "log_level", Err: err}
		}
	}
	if args.Verbose {
		s.level = slog.LevelDebug
	}
	if args.Seed != nil {
		s.seed = *args.Seed
	}
	return s, nil
}

func (s settings) options(log *slog.Logger) markov.Options {
	return markov.Options{
		MaxWordLength: s.maxWordLength,
		Multiprocess:  s.multiprocess,
		Seed:          s.seed,
		Logger:        log,
	}
}
