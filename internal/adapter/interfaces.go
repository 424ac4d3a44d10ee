// Package adapter provides transport-layer abstractions for communicating
// with the remote document store.
//
// The primary abstraction is [RemoteStore], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteStore]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/credvault/credvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore defines transport-agnostic communication with the remote
// document store. Implementations are responsible for serialisation, bearer
// token management, and mapping transport-level errors to the sentinel values
// defined in this package.
type RemoteStore interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. Called after the authentication provider hands
	// over a fresh session token.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Session extracts the session described by the stored token: the
	// subject claim becomes the account id; the expiry claim, when present,
	// becomes the expiry time. The token signature is not verified, the
	// authentication provider already did that.
	Session() (models.Session, error)

	// Put writes one document into the named collection under the given id,
	// replacing any previous content. A transport integrity hash covering
	// the payload is attached automatically.
	Put(ctx context.Context, collection, id string, record models.Record) error

	// Get returns all documents in the named collection matching the filter.
	// Filtering by scope hash is the normal path; the raw owner path exists
	// only for reading documents written before scope hashing.
	Get(ctx context.Context, collection string, filter models.RemoteFilter) ([]models.Record, error)

	// Delete removes one document from the named collection. Returns
	// [ErrNotFound] (wrapped) when the document does not exist.
	Delete(ctx context.Context, collection, id string) error

	// GetSnapshot fetches the single backup snapshot stored for the owner.
	// Returns [ErrNotFound] (wrapped) when no snapshot was ever uploaded.
	GetSnapshot(ctx context.Context, ownerScopeHash string) (models.BackupSnapshot, error)

	// PutSnapshot replaces the owner's backup snapshot wholesale
	// (last-writer-wins). A transport integrity hash is attached
	// automatically.
	PutSnapshot(ctx context.Context, ownerScopeHash string, snapshot models.BackupSnapshot) error
}
