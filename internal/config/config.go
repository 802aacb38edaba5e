package config

import (
	"fmt"
	"strings"
)

// Config holds the options for one search run
type Config struct {
	// Query is the selector expression to evaluate
	Query string

	// Paths are the HTML files to search, in command-line order; empty
	// means the document is read from standard input
	Paths []string

	// MaxResults caps the combined number of matches across all inputs.
	// Zero is a real cap yielding no results; a negative value disables
	// the cap.
	MaxResults int
}

// Default returns a configuration with no result cap
func Default() Config {
	return Config{
		MaxResults: -1, // unlimited
	}
}

// Validate checks that the configuration describes a runnable search
func (c Config) Validate() error {
	if strings.TrimSpace(c.Query) == "" {
		return fmt.Errorf("selector must not be empty")
	}
	return nil
}
