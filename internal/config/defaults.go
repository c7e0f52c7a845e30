package config

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scanner: ScannerConfig{
			DisabledTypes:       nil,
			ExtraWhitelistNames: nil,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
