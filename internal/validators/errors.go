package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptySecret      = errors.New("secret is required")
	ErrTitleTooLong     = errors.New("title is too long")
	ErrSecretTooLong    = errors.New("secret is too long")
	ErrNotesTooLong     = errors.New("notes are too long")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrPlaceholderValue = errors.New("placeholder value cannot be saved")
)
