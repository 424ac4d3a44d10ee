package service

import (
	"github.com/credvault/credvault/internal/adapter"
	"github.com/credvault/credvault/internal/crypto"
	"github.com/credvault/credvault/internal/logger"
	"github.com/credvault/credvault/internal/store"
)

type Services struct {
	Codec RecordCodec
	Vault VaultService
}

// NewServices assembles the service layer. The codec is constructed by the
// caller because the local cache also depends on it for its migration pass.
func NewServices(
	remote adapter.RemoteStore,
	cache store.LocalCache,
	codec RecordCodec,
	keys crypto.KeyService,
	scheduler BackupScheduler,
	logger *logger.Logger,
) *Services {
	return &Services{
		Codec: codec,
		Vault: NewSyncEngine(remote, cache, codec, keys, scheduler, logger),
	}
}
