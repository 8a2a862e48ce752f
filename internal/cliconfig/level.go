package cliconfig

import (
	"strings"

	"github.com/rs/zerolog"
)

// Level returns the configured log level, or info when it is empty or does
// not parse. Validate rejects unknown levels before this is reached.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
