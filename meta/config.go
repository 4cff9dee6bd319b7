// Package meta implements the engine that compiles a pattern and selects
// how to execute it.
//
// The engine coordinates:
//   - Literal engine: Aho-Corasick over the exact literal set (optional)
//   - First-byte prefilter: skips offsets that cannot begin a match (optional)
//   - Backtracker: the reference evaluator, always available
//
// Strategy selection is based on:
//   - Whether the pattern matches the empty string
//   - Whether the pattern denotes a small finite set of strings
//   - Whether the first-byte set can reject offsets
package meta

import "fmt"

// Config controls engine behavior and evaluation limits.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnableLiteralEngine = false // always run the backtracker
//	engine, err := meta.CompileWithConfig("foo|bar", config)
type Config struct {
	// EnablePrefilter enables the first-byte prefilter.
	// Default: true
	EnablePrefilter bool

	// EnableLiteralEngine enables Aho-Corasick matching for patterns
	// that denote a finite set of strings.
	// Default: true
	EnableLiteralEngine bool

	// MinLiterals is the smallest literal set handed to Aho-Corasick.
	// Smaller sets are cheaper to run through the backtracker.
	// Default: 2
	MinLiterals int

	// MaxLiterals limits the size of the extracted literal set.
	// Default: 64
	MaxLiterals int

	// MaxRecursionDepth limits recursion during code generation.
	// Zero means no limit.
	// Default: 0
	MaxRecursionDepth int

	// MaxSteps bounds the instructions dispatched per evaluation.
	// Zero means unlimited.
	// Default: 0
	MaxSteps int

	// MaxVisitedBits bounds the backtracker's dense visited bit vector.
	// Default: 256 * 1024 * 8 (256KB)
	MaxVisitedBits int
}

// DefaultConfig returns a configuration with sensible defaults.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.MaxSteps = 1_000_000
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:     true,
		EnableLiteralEngine: true,
		MinLiterals:         2,
		MaxLiterals:         64,
		MaxRecursionDepth:   0,
		MaxSteps:            0,
		MaxVisitedBits:      256 * 1024 * 8,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
func (c Config) Validate() error {
	if c.EnableLiteralEngine {
		if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
			return &ConfigError{
				Field:   "MaxLiterals",
				Message: "must be between 1 and 1,000",
			}
		}
		if c.MinLiterals < 1 || c.MinLiterals > c.MaxLiterals {
			return &ConfigError{
				Field:   "MinLiterals",
				Message: fmt.Sprintf("must be between 1 and MaxLiterals (%d)", c.MaxLiterals),
			}
		}
	}

	if c.MaxRecursionDepth < 0 {
		return &ConfigError{
			Field:   "MaxRecursionDepth",
			Message: "must not be negative",
		}
	}

	if c.MaxSteps < 0 {
		return &ConfigError{
			Field:   "MaxSteps",
			Message: "must not be negative",
		}
	}

	if c.MaxVisitedBits < 0 {
		return &ConfigError{
			Field:   "MaxVisitedBits",
			Message: "must not be negative",
		}
	}

	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "tinyre: invalid config: " + e.Field + ": " + e.Message
}
