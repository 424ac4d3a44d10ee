package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-r/-remote remote document-store base URL
//	-d database DSN for the local cache
//	-c/-config json file path with configs
//	-hash-key security hash key
//	-secret-service OS secret store service name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval periodic refresh interval (e.g., "5m")
//	-backup-debounce backup quiet period (e.g., "1s")
func ParseFlags() *StructuredConfig {
	var remoteBaseURL string
	var databaseDSN string
	var jsonConfigPath string
	var hashKey string
	var secretService string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var backupDebounce time.Duration

	flag.StringVar(&remoteBaseURL, "r", "", "Remote document-store base URL")
	flag.StringVar(&remoteBaseURL, "remote", "", "Remote document-store base URL (alias)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&hashKey, "hash-key", "", "Security hash key")
	flag.StringVar(&secretService, "secret-service", "", "OS secret store service name")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic refresh interval (e.g., 5m)")
	flag.DurationVar(&backupDebounce, "backup-debounce", 0, "Backup quiet period (e.g., 1s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			HashKey:       hashKey,
			SecretService: secretService,
		},
		Remote: Remote{
			BaseURL:        remoteBaseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			SyncInterval:   syncInterval,
			BackupDebounce: backupDebounce,
		},
		JSONFilePath: jsonConfigPath,
	}
}
