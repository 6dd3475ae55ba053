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
	c.normalizeConversion()
	if err := c.normalizeTools(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LockDir) == "" {
		c.Paths.LockDir = defaultLockDir
	}
	if c.Paths.LockDir, err = expandPath(c.Paths.LockDir); err != nil {
		return fmt.Errorf("paths.lock_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeConversion() {
	c.Conversion.TargetCodec = strings.ToLower(strings.TrimSpace(c.Conversion.TargetCodec))
	c.Conversion.TargetCodec = strings.TrimPrefix(c.Conversion.TargetCodec, ".")
	if c.Conversion.TargetCodec == "" {
		c.Conversion.TargetCodec = defaultTargetCodec
	}
}

func (c *Config) normalizeTools() error {
	if value, ok := os.LookupEnv("SNDCONVERT_TOOL_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Tools.Dir = value
	}
	c.Tools.Dir = strings.TrimSpace(c.Tools.Dir)
	if c.Tools.Dir != "" {
		var err error
		if c.Tools.Dir, err = expandPath(c.Tools.Dir); err != nil {
			return fmt.Errorf("tools.dir: %w", err)
		}
	}
	c.Tools.Platform = strings.TrimSpace(c.Tools.Platform)
	if len(c.Tools.PlatformDirs) == 0 {
		c.Tools.PlatformDirs = defaultPlatformDirs()
	}
	dirs := make(map[string]string, len(c.Tools.PlatformDirs))
	for platform, dir := range c.Tools.PlatformDirs {
		platform = strings.TrimSpace(platform)
		dir = strings.TrimSpace(dir)
		if platform == "" || dir == "" {
			continue
		}
		expanded, err := expandPath(dir)
		if err != nil {
			return fmt.Errorf("tools.platform_dirs.%s: %w", platform, err)
		}
		dirs[platform] = expanded
	}
	c.Tools.PlatformDirs = dirs
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
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
