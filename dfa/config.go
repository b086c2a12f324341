package dfa

// Config controls DFA construction limits.
type Config struct {
	// MaxStates bounds the number of canonical states the builder may
	// intern. Construction fails with StateLimitExceeded when a pattern
	// needs more. The bound exists as a resource ceiling; termination is
	// guaranteed regardless, since the set of canonical derivatives of any
	// term is finite.
	MaxStates int
}

// DefaultConfig returns construction limits suitable for typical patterns.
func DefaultConfig() Config {
	return Config{
		MaxStates: 10000,
	}
}

// validate reports whether the configuration is usable.
func (c Config) validate() error {
	if c.MaxStates <= 0 {
		return &BuildError{
			Kind:    InvalidConfig,
			Message: "MaxStates must be positive",
		}
	}
	return nil
}
