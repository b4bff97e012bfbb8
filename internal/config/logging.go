package config

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/comunidad/feedquery/internal/logging"
)

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"          json:"level"`
	Format string `yaml:"format"         json:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// Validate checks the level and format.
func (l LoggingConfig) Validate() error {
	if l.Level != "" {
		if _, err := zerolog.ParseLevel(l.Level); err != nil {
			return fmt.Errorf("logging.level: %w", err)
		}
	}
	switch l.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be console or json)", ErrInvalidLogFormat, l.Format)
	}
}

// ToLoggingConfig converts to the logging package's Config. A relative file
// path is resolved under HomeDir.
func (l LoggingConfig) ToLoggingConfig() logging.Config {
	file := l.File
	if file != "" && !filepath.IsAbs(file) {
		if home := HomeDir(); home != "" {
			file = filepath.Join(home, file)
		}
	}
	return logging.Config{
		Level:  l.Level,
		Format: l.Format,
		File:   file,
	}
}
