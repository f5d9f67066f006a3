package config

import (
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMirror(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMirror() error {
	switch c.Mirror.OnMoveError {
	case OnMoveErrorAbort, OnMoveErrorSkip:
	default:
		return fmt.Errorf("mirror.on_move_error must be %q or %q, got %q", OnMoveErrorAbort, OnMoveErrorSkip, c.Mirror.OnMoveError)
	}
	if c.Mirror.Source != "" && c.Mirror.Source == c.Mirror.Destination {
		return fmt.Errorf("mirror.source and mirror.destination must differ (both are %s)", c.Mirror.Source)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}
