package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/credvault/credvault/models"
)

// Field names accepted by RecordValidator for scoped validation.
const (
	FieldTitle    = "title"
	FieldSecret   = "secret"
	FieldCategory = "category"
	FieldNotes    = "notes"
)

// Size limits for user-supplied fields, measured on the plaintext. Generous
// enough for any sane credential, tight enough to keep a single record's
// cipher envelope well under the cache blob limits.
const (
	maxTitleLen  = 256
	maxSecretLen = 4096
	maxNotesLen  = 8192
)

type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return v.validateRecord(ctx, value, fields...)
	case *models.Record:
		return v.validateRecord(ctx, *value, fields...)
	default:
		return fmt.Errorf("%T: %w", obj, ErrUnsupportedType)
	}
}

func (v *RecordValidator) validateRecord(_ context.Context, record models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldSecret, FieldCategory, FieldNotes}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldTitle:
			err = v.validateTitle(record.Title)
		case FieldSecret:
			err = v.validateSecret(record.Secret)
		case FieldCategory:
			err = v.validateCategory(record.Category)
		case FieldNotes:
			err = v.validateNotes(record.Notes)
		default:
			return fmt.Errorf("%q: %w", field, ErrUnknownField)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *RecordValidator) validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if len(title) > maxTitleLen {
		return fmt.Errorf("%d bytes: %w", len(title), ErrTitleTooLong)
	}
	return nil
}

func (v *RecordValidator) validateSecret(secret string) error {
	if secret == "" {
		return ErrEmptySecret
	}
	if len(secret) > maxSecretLen {
		return fmt.Errorf("%d bytes: %w", len(secret), ErrSecretTooLong)
	}
	// placeholders leak back in when a user edits a locked record
	if isPlaceholder(secret) {
		return fmt.Errorf("%q: %w", secret, ErrPlaceholderValue)
	}
	return nil
}

func (v *RecordValidator) validateCategory(category string) error {
	if category == "" {
		return nil
	}
	for _, known := range models.KnownCategories() {
		if known == category {
			return nil
		}
	}
	return fmt.Errorf("%q: %w", category, ErrUnknownCategory)
}

func (v *RecordValidator) validateNotes(notes string) error {
	if len(notes) > maxNotesLen {
		return fmt.Errorf("%d bytes: %w", len(notes), ErrNotesTooLong)
	}
	return nil
}

func isPlaceholder(value string) bool {
	return strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]")
}
