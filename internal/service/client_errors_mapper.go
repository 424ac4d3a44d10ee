package service

import (
	"errors"
	"fmt"

	"github.com/credvault/credvault/internal/adapter"
)

// mapRemoteWriteError translates a transport error from the write path into
// the engine's business taxonomy.
func mapRemoteWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: %s", ErrNotAuthenticated, err)
	}
	return fmt.Errorf("%w: %s", ErrRemoteWriteFailed, err)
}

// mapRemoteReadError translates a transport error from the read path.
// Missing documents map onto [ErrRecordNotFound] so callers need not know the
// adapter's sentinels.
func mapRemoteReadError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %s", ErrNotAuthenticated, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrRecordNotFound, err)
	default:
		return fmt.Errorf("%w: %s", ErrRemoteReadFailed, err)
	}
}
