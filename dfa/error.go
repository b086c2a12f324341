package dfa

import "fmt"

// ErrorKind classifies DFA construction errors.
type ErrorKind uint8

const (
	// StateLimitExceeded indicates the pattern needed more canonical states
	// than Config.MaxStates allows ("pattern too complex").
	StateLimitExceeded ErrorKind = iota

	// TooManyCaptures indicates the pattern has more capture groups than the
	// transition encoding supports (ast.MaxCaptureGroups).
	TooManyCaptures

	// InvalidConfig indicates configuration validation failed.
	InvalidConfig
)

// String returns a human-readable kind name.
func (k ErrorKind) String() string {
	switch k {
	case StateLimitExceeded:
		return "StateLimitExceeded"
	case TooManyCaptures:
		return "TooManyCaptures"
	case InvalidConfig:
		return "InvalidConfig"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// BuildError is an error produced during DFA construction.
type BuildError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("dfa: %s: %s", e.Kind, e.Message)
}

// Is allows errors.Is matching on the error kind.
func (e *BuildError) Is(target error) bool {
	other, ok := target.(*BuildError)
	return ok && other.Kind == e.Kind
}

// ErrStateLimitExceeded is the sentinel for errors.Is checks against
// StateLimitExceeded build failures.
var ErrStateLimitExceeded = &BuildError{
	Kind:    StateLimitExceeded,
	Message: "pattern too complex",
}

// ErrTooManyCaptures is the sentinel for errors.Is checks against
// TooManyCaptures build failures.
var ErrTooManyCaptures = &BuildError{
	Kind:    TooManyCaptures,
	Message: "too many capture groups",
}
