package config

import (
	"errors"
	"fmt"
	"strings"
)

var supportedTargets = []string{"mp3", "flac", "ogg"}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateConversion(); err != nil {
		return err
	}
	if err := c.validateTools(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateConversion() error {
	supported := false
	for _, target := range supportedTargets {
		if c.Conversion.TargetCodec == target {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("conversion.target_codec %q is not one of %s", c.Conversion.TargetCodec, strings.Join(supportedTargets, ", "))
	}
	if c.Conversion.Workers <= 0 {
		return errors.New("conversion.workers must be positive")
	}
	return nil
}

func (c *Config) validateTools() error {
	if c.Tools.Dir == "" && len(c.Tools.PlatformDirs) == 0 {
		return errors.New("tools.platform_dirs must list at least one platform when tools.dir is unset")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if c.Logging.RetentionDays < 0 {
		return errors.New("logging.retention_days must not be negative")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
}
