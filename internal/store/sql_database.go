package store

import (
	"database/sql"

	"github.com/credvault/credvault/internal/logger"
	"github.com/credvault/credvault/migrations"
)

// DB wraps the sqlite connection together with the logger handed down to
// the stores built on top of it.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded cache schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
