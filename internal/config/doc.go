// Package config loads runtime configuration for the registry CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c/--config. Files ending in .toml
//     are decoded as TOML, anything else as JSON.
//  3. Environment variables, after an optional .env file in the working
//     directory has been loaded.
//  4. Command-line flags, applied by the cli package, which override
//     everything else.
//
// # File schema
//
// Keys are the same in JSON and TOML; every key is optional:
//
//	{
//	  "file": "usuarios.json",
//	  "log_level": "warn",
//	  "log_format": "text",
//	  "hash_passwords": false,
//	  "create_if_missing": true,
//	  "lock_timeout": "5s"
//	}
//
// # Environment
//
//	USERREGISTRY_FILE, USERREGISTRY_LOG_LEVEL, USERREGISTRY_LOG_FORMAT,
//	USERREGISTRY_HASH_PASSWORDS, USERREGISTRY_CREATE_IF_MISSING,
//	USERREGISTRY_LOCK_TIMEOUT
package config
