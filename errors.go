package markov

import "errors"

// Kind classifies a fatal error.
type Kind uint8

// Error kinds, one per diagnostic the commands can end with.
const (
	KindInternal Kind = iota
	KindMissingParameter
	KindInvalidParameter
	KindUnknownOption
	KindMissingOptionArgument
	KindInvalidOptionArgument
	KindMissingCommand
	KindInvalidCommand
	KindInvalidText
	KindInvalidTable
	// KindMemoryAllocation names the diagnostic only. The Go runtime
	// aborts the process when an allocation fails, so no error carries it.
	KindMemoryAllocation
	KindPipeline
)

var kindMessages = [...]string{
	KindInternal:              "internal error",
	KindMissingParameter:      "missing parameter",
	KindInvalidParameter:      "invalid parameter",
	KindUnknownOption:         "unknown option",
	KindMissingOptionArgument: "missing option argument for",
	KindInvalidOptionArgument: "invalid option argument for",
	KindMissingCommand:        "missing command",
	KindInvalidCommand:        "invalid command",
	KindInvalidText:           "invalid text",
	KindInvalidTable:          "invalid table",
	KindMemoryAllocation:      "memory allocation failed",
	KindPipeline:              "pipeline failed",
}

func (k Kind) String() string {
	if int(k) < len(kindMessages) {
		return kindMessages[k]
	}
	return kindMessages[KindInternal]
}

// Error is a fatal error of a given Kind. Arg names the offending parameter,
// option or file, if any; Err carries the underlying cause.
type Error struct {
	Kind Kind
	Arg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Arg != "" {
		msg += " '" + e.Arg + "'"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind. A target with an Arg also requires
// the same Arg.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Arg == "" || t.Arg == e.Arg)
}

// Sentinels for errors.Is.
var (
	ErrInvalidText           = &Error{Kind: KindInvalidText}
	ErrInvalidTable          = &Error{Kind: KindInvalidTable}
	ErrInvalidOptionArgument = &Error{Kind: KindInvalidOptionArgument}
	ErrPipeline              = &Error{Kind: KindPipeline}
)

// KindOf returns the Kind of the first *Error in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
