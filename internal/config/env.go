package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "USERREGISTRY_"

// lookupEnv is a test seam for os.LookupEnv.
var lookupEnv = os.LookupEnv

// loadDotEnv exports the variables from the .env file at path into the
// process environment. Variables already set are left alone. A missing file
// is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}

// parseEnv overlays cfg with USERREGISTRY_* variables found through lookup.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "FILE"); ok && v != "" {
		cfg.FilePath = v
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(envPrefix + "LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = v
	}
	if v, ok := lookup(envPrefix + "HASH_PASSWORDS"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sHASH_PASSWORDS: %w", envPrefix, err)
		}
		cfg.HashPasswords = b
	}
	if v, ok := lookup(envPrefix + "CREATE_IF_MISSING"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sCREATE_IF_MISSING: %w", envPrefix, err)
		}
		cfg.CreateIfMissing = b
	}
	if v, ok := lookup(envPrefix + "LOCK_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sLOCK_TIMEOUT: %w", envPrefix, err)
		}
		cfg.LockTimeout = d
	}
	return nil
}
