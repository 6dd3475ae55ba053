package config

const (
	defaultLogDir       = "~/.local/share/sndconvert/logs"
	defaultLockDir      = "~/.local/share/sndconvert/locks"
	defaultTargetCodec  = "mp3"
	defaultWorkers      = 2
	defaultStrictDecode = true
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultLogRetention = 30
)

// defaultPlatformDirs maps uname(2) kernel names to the directory holding the
// decoder, encoder, and analyzer binaries.
func defaultPlatformDirs() map[string]string {
	return map[string]string{
		"Darwin": "/opt/local/bin",
		"Linux":  "/usr/bin",
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:  defaultLogDir,
			LockDir: defaultLockDir,
		},
		Conversion: Conversion{
			TargetCodec:  defaultTargetCodec,
			Workers:      defaultWorkers,
			StrictDecode: defaultStrictDecode,
		},
		Tools: Tools{
			PlatformDirs: defaultPlatformDirs(),
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetention,
		},
	}
}
