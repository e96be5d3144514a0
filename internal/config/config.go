// Package config provides configuration management for go-timelimit.
package config

// Config holds all configuration options for the launcher.
type Config struct {
	// Child process
	TimeoutMS uint32   `json:"timeout_ms"`
	Command   []string `json:"command"` // program first, then its arguments

	// Quoting
	ForceQuote bool `json:"force_quote"`

	// Observability
	Verbose   bool   `json:"verbose"`
	LogFormat string `json:"log_format"` // text, json

	// Diagnostic modes
	PrintCmd bool `json:"print_cmd"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ForceQuote: false,
		Verbose:    false,
		LogFormat:  "text",
		PrintCmd:   false,
	}
}
