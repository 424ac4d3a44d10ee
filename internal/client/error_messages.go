package client

import (
	"errors"

	"github.com/credvault/credvault/internal/service"
)

// Human-readable messages shown to the user instead of raw error chains.
// Keeping them in one place ensures consistent wording across commands.
const (
	msgNotAuthenticated = "not signed in: run 'credvault login' first"
	msgVaultLocked      = "vault is locked: run 'credvault login' with your credential to unlock it"
	msgRemoteWrite      = "could not reach the cloud store, nothing was changed; try again once you are online"
	msgRemoteRead       = "could not reach the cloud store; showing what is cached locally may still work via 'list'"
	msgBackupUnsafe     = "backup aborted: some records could not be proven encrypted, nothing was uploaded"
	msgNothingToBackup  = "the vault is empty, there is nothing to back up"
	msgRecordNotFound   = "no record matches that id"
	msgResetNotConfirm  = "emergency reset is destructive: re-run with -yes to confirm"
)

// userMessage maps a service error onto the message printed to the terminal.
// Unmapped errors fall through unchanged.
func userMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return msgNotAuthenticated
	case errors.Is(err, service.ErrKeyUnavailable):
		return msgVaultLocked
	case errors.Is(err, service.ErrRemoteWriteFailed):
		return msgRemoteWrite
	case errors.Is(err, service.ErrRemoteReadFailed):
		return msgRemoteRead
	case errors.Is(err, service.ErrEncryptionVerificationFailed):
		return msgBackupUnsafe
	case errors.Is(err, service.ErrNothingToBackup):
		return msgNothingToBackup
	case errors.Is(err, service.ErrRecordNotFound):
		return msgRecordNotFound
	case errors.Is(err, service.ErrResetNotConfirmed):
		return msgResetNotConfirm
	default:
		return err.Error()
	}
}
