package config

import "time"

// DefaultFile is the data file used when nothing else is configured.
const DefaultFile = "usuarios.json"

// Config holds runtime settings for the registry CLI.
type Config struct {
	// FilePath is the JSON document holding all users.
	FilePath string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFormat is "text" (slog) or "json" (zap).
	LogFormat string
	// HashPasswords stores bcrypt hashes instead of plain passwords.
	HashPasswords bool
	// CreateIfMissing writes an empty document at startup when FilePath
	// does not exist.
	CreateIfMissing bool
	// LockTimeout bounds the wait for the data file lock.
	LockTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.FilePath = DefaultFile
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.HashPasswords = false
	c.CreateIfMissing = true
	c.LockTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file at configPath (if not empty) and from the environment.
// Later sources take precedence over earlier ones.
func LoadConfig(configPath string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if configPath != "" {
		if err := parseFile(cfg, configPath); err != nil {
			return nil, err
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, lookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}
