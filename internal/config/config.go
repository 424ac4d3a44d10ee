package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the credvault
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the transport hash key
	// and the OS secret-store service name.
	App App `envPrefix:"APP_"`

	// Remote holds the remote document-store endpoint settings.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds configuration for the local cache database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header on outbound requests).
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// SecretService is the service name under which derived key material is
	// stored in the OS secret store.
	// Env: APP_SECRET_SERVICE
	SecretService string `env:"SECRET_SERVICE"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Remote holds endpoint and timeout settings for the remote document store.
type Remote struct {
	// BaseURL is the base URL of the remote document-store API
	// (e.g. "https://vault.example.com").
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local cache database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the SQLite Data Source Name used to open the local cache
	// (e.g. "file:credvault.db" or a plain file path).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often the periodic refresh worker pulls the
	// remote state into the local cache (e.g. "5m").
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// BackupDebounce is the quiet period after the last write before a
	// cloud backup is triggered (e.g. "1s").
	// Env: WORKERS_BACKUP_DEBOUNCE
	BackupDebounce time.Duration `env:"BACKUP_DEBOUNCE"`
}

// GetStructuredConfig loads and merges the application configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns the merged *StructuredConfig or an error if any source fails to
// load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
