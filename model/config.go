package model

// Config holds the resolved configuration for one query. It is built once
// at the CLI boundary from flags and the RRES_* environment and stays
// immutable for the duration of the query; the core never reads the
// environment itself.
type Config struct {
	// Card is the GPU to read (a node under /dev/dri, e.g. "card0").
	// Empty means auto-scan for the first usable card.
	Card string `mapstructure:"card"`
	// Multi reports every connected display instead of a single one.
	Multi bool `mapstructure:"multi"`
	// Display selects the n-th detected display in single mode
	// (RRES_DISPLAY). Parsed strictly at the boundary, not unmarshaled.
	Display int `mapstructure:"-"`
	// ForceRes, when non-empty, bypasses hardware querying entirely and is
	// reported as the sole result (RRES_FORCE_RES).
	ForceRes string `mapstructure:"force_res"`

	// Verbosity is the net -v minus -q count, zero by default.
	Verbosity int `mapstructure:"-"`
}

// DefaultConfig returns a config with default values.
func DefaultConfig() *Config {
	return &Config{
		Card:      "",
		Multi:     false,
		Display:   0,
		ForceRes:  "",
		Verbosity: 0,
	}
}
