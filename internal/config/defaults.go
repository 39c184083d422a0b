package config

const (
	defaultConfigPath  = "~/.config/ridersettings/config.toml"
	projectConfigName  = "ridersettings.toml"
	defaultAtomicWrite = true
	defaultLock        = false
	defaultLogFormat   = "console"
	defaultLogLevel    = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Settings: Settings{
			AtomicWrite: defaultAtomicWrite,
			Lock:        defaultLock,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
