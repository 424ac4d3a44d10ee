package service

import "errors"

// Business errors raised by the sync engine. Callers match with [errors.Is].
var (
	// ErrNotAuthenticated is returned when an operation requires a live
	// session and none is active.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrKeyUnavailable is returned when an operation needs the
	// credential-derived key and none is active or restorable.
	ErrKeyUnavailable = errors.New("encryption key unavailable")

	// ErrRemoteWriteFailed wraps any transport failure on the write path.
	// The operation that raised it performed no local mutation.
	ErrRemoteWriteFailed = errors.New("remote write failed")

	// ErrRemoteReadFailed wraps any transport failure on the read path when
	// no cache fallback applies.
	ErrRemoteReadFailed = errors.New("remote read failed")

	// ErrEncryptionVerificationFailed blocks a backup whose payload could
	// not be proven fully encrypted. Nothing is transmitted.
	ErrEncryptionVerificationFailed = errors.New("encryption verification failed")

	// ErrNothingToBackup is returned when a backup is requested and the
	// local cache holds no records.
	ErrNothingToBackup = errors.New("nothing to backup")

	// ErrRecordNotFound is returned when an operation targets a record that
	// exists neither under its local id nor its remote document ref.
	ErrRecordNotFound = errors.New("record not found")

	// ErrResetNotConfirmed guards the emergency reset: the caller must pass
	// explicit confirmation before anything is wiped.
	ErrResetNotConfirmed = errors.New("emergency reset not confirmed")
)
