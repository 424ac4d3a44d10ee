package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{HashKey: "hmac-secret"},
		Remote: Remote{
			BaseURL:        "https://vault.example.com",
			RequestTimeout: 45 * time.Second,
		},
		Storage: Storage{DB: DB{DSN: "file:cache.db"}},
		Workers: Workers{
			SyncInterval:   10 * time.Minute,
			BackupDebounce: 2 * time.Second,
		},
	}
}

func TestClientView_MapsFields(t *testing.T) {
	cfg := clientView(validStructuredConfig())

	assert.Equal(t, "hmac-secret", cfg.App.HashKey)
	assert.Equal(t, "https://vault.example.com", cfg.Remote.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, "file:cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 2*time.Second, cfg.Workers.BackupDebounce)
}

func TestClientView_AppliesDefaults(t *testing.T) {
	src := validStructuredConfig()
	src.App.SecretService = ""
	src.Remote.RequestTimeout = 0
	src.Workers.SyncInterval = 0
	src.Workers.BackupDebounce = 0

	cfg := clientView(src)

	assert.Equal(t, DefaultSecretService, cfg.App.SecretService)
	assert.Equal(t, DefaultRequestTimeout, cfg.Remote.RequestTimeout)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultBackupDebounce, cfg.Workers.BackupDebounce)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			name:    "valid",
			mutate:  func(cfg *StructuredConfig) {},
			wantErr: nil,
		},
		{
			name:    "empty DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "file::memory:?cache=shared" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing base URL",
			mutate:  func(cfg *StructuredConfig) { cfg.Remote.BaseURL = "" },
			wantErr: ErrInvalidRemoteConfigs,
		},
		{
			name:    "missing hash key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.HashKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := validStructuredConfig()
			tt.mutate(src)

			err := clientView(src).validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
