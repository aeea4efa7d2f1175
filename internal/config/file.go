package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig is a DTO used exclusively for decoding config files. Pointer
// and empty values mean "not set" so a partial file only overrides what it
// names.
type fileConfig struct {
	File            string `json:"file" toml:"file"`
	LogLevel        string `json:"log_level" toml:"log_level"`
	LogFormat       string `json:"log_format" toml:"log_format"`
	HashPasswords   *bool  `json:"hash_passwords" toml:"hash_passwords"`
	CreateIfMissing *bool  `json:"create_if_missing" toml:"create_if_missing"`
	LockTimeout     string `json:"lock_timeout" toml:"lock_timeout"`
}

// parseFile overlays cfg with the values found in the file at path.
func parseFile(cfg *Config, path string) error {
	var fc fileConfig

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &fc); err != nil {
			return fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	return fc.apply(cfg)
}

func (fc *fileConfig) apply(cfg *Config) error {
	if fc.File != "" {
		cfg.FilePath = fc.File
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
	if fc.HashPasswords != nil {
		cfg.HashPasswords = *fc.HashPasswords
	}
	if fc.CreateIfMissing != nil {
		cfg.CreateIfMissing = *fc.CreateIfMissing
	}
	if fc.LockTimeout != "" {
		d, err := time.ParseDuration(fc.LockTimeout)
		if err != nil {
			return fmt.Errorf("lock_timeout: %w", err)
		}
		cfg.LockTimeout = d
	}
	return nil
}
