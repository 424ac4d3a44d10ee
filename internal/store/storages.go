package store

import (
	"context"
	"fmt"

	"github.com/credvault/credvault/internal/config"
	"github.com/credvault/credvault/internal/logger"
)

// ClientStorages groups all client-side storage backends into a single value
// that can be passed around the service layer. Currently it holds only
// [LocalCache]; additional backends can be added here as the feature set
// grows.
type ClientStorages struct {
	// Cache is the SQLite-backed local record cache.
	Cache LocalCache
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [LocalCache].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, cipher RecordCipher, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Cache: NewRecordCache(db, cipher, logger),
	}, nil
}
