package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] when the merged configuration leaves
// the corresponding field unset.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultSyncInterval   = 5 * time.Minute
	DefaultBackupDebounce = time.Second
	DefaultSecretService  = "credvault"
)

// ClientApp holds application-level settings used by the client runtime.
type ClientApp struct {
	// HashKey is the HMAC key used for payload integrity checks.
	HashKey string
	// SecretService is the OS secret store service name for key material.
	SecretService string
}

// ClientRemote holds network settings used by the client transport layer.
type ClientRemote struct {
	// BaseURL is the remote document-store base URL.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local cache database settings.
type ClientDB struct {
	// DSN is the SQLite connection string for the local cache.
	DSN string
}

// ClientStorage groups local storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the refresh worker should run.
	SyncInterval time.Duration
	// BackupDebounce is the quiet period before a backup fires.
	BackupDebounce time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Remote contains transport addresses and timeouts.
	Remote ClientRemote
	// Storage contains local storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the merged
// structured configuration, filling defaults for optional fields.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := clientView(cfg)
	return clientCfg, clientCfg.validate()
}

func clientView(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey:       cfg.App.HashKey,
			SecretService: cfg.App.SecretService,
		},
		Remote: ClientRemote{
			BaseURL:        cfg.Remote.BaseURL,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:   cfg.Workers.SyncInterval,
			BackupDebounce: cfg.Workers.BackupDebounce,
		},
	}

	if clientCfg.App.SecretService == "" {
		clientCfg.App.SecretService = DefaultSecretService
	}
	if clientCfg.Remote.RequestTimeout == 0 {
		clientCfg.Remote.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Workers.SyncInterval == 0 {
		clientCfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if clientCfg.Workers.BackupDebounce == 0 {
		clientCfg.Workers.BackupDebounce = DefaultBackupDebounce
	}

	return clientCfg
}
