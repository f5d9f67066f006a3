package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeMirror(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(strings.TrimSpace(c.Paths.StateDir)); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeMirror() error {
	if value, ok := os.LookupEnv("MIRRORSORT_SOURCE"); ok && strings.TrimSpace(value) != "" {
		c.Mirror.Source = value
	}
	if value, ok := os.LookupEnv("MIRRORSORT_DESTINATION"); ok && strings.TrimSpace(value) != "" {
		c.Mirror.Destination = value
	}

	var err error
	if c.Mirror.Source, err = expandPath(strings.TrimSpace(c.Mirror.Source)); err != nil {
		return fmt.Errorf("mirror.source: %w", err)
	}
	if c.Mirror.Destination, err = expandPath(strings.TrimSpace(c.Mirror.Destination)); err != nil {
		return fmt.Errorf("mirror.destination: %w", err)
	}

	c.Mirror.OnMoveError = strings.ToLower(strings.TrimSpace(c.Mirror.OnMoveError))
	if c.Mirror.OnMoveError == "" {
		c.Mirror.OnMoveError = defaultOnMoveError
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv("MIRRORSORT_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}
