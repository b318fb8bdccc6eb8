package seeq

import "github.com/coregx/seeq/pattern"

// Config controls how a query is parsed and searched.
//
// Example:
//
//	config := seeq.DefaultConfig()
//	config.Syntax = seeq.DNA
//	m, err := seeq.CompileWithConfig("AC[AT]NGG", 1, config)
type Config struct {
	// Syntax selects how the query is parsed.
	// Default: Bytes
	Syntax Syntax

	// FoldCase makes ASCII letters match either case (Bytes syntax only;
	// DNA syntax always folds case).
	// Default: false
	FoldCase bool

	// EnablePrefilter enables the pigeonhole seed filter, which rejects
	// texts containing none of the k+1 query pieces before the matcher
	// runs. It only applies to queries where every position matches a
	// single byte. Results are the same with or without it.
	// Default: true
	EnablePrefilter bool

	// MinSeedLen is the shortest query piece the prefilter searches for.
	// Queries whose pieces would be shorter run without a prefilter.
	// Default: 4
	MinSeedLen int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Syntax:          Bytes,
		EnablePrefilter: true,
		MinSeedLen:      4,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - Syntax: Bytes or DNA
//   - MinSeedLen: 1 to 64 (when the prefilter is enabled)
func (c Config) Validate() error {
	if c.Syntax != pattern.Bytes && c.Syntax != pattern.DNA {
		return &ConfigError{
			Field:   "Syntax",
			Message: "must be Bytes or DNA",
		}
	}
	if c.EnablePrefilter && (c.MinSeedLen < 1 || c.MinSeedLen > 64) {
		return &ConfigError{
			Field:   "MinSeedLen",
			Message: "must be between 1 and 64",
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
	return "seeq: invalid config: " + e.Field + ": " + e.Message
}
