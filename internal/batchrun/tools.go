package batchrun

import (
	"sndconvert/internal/codec"
	"sndconvert/internal/config"
)

// ToolDir returns the directory holding the external audio tools: the
// configured override when set, otherwise the platform table entry for the
// configured or detected platform.
func ToolDir(cfg *config.Config) (dir string, platform string, err error) {
	if cfg.Tools.Dir != "" {
		return cfg.Tools.Dir, cfg.Tools.Platform, nil
	}
	platform = cfg.Tools.Platform
	if platform == "" {
		if platform, err = codec.CurrentPlatform(); err != nil {
			return "", "", err
		}
	}
	dir, err = codec.ResolveToolDir(platform, cfg.Tools.PlatformDirs)
	return dir, platform, err
}
