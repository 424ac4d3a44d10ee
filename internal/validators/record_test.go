package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/credvault/credvault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() models.Record {
	return models.Record{
		Title:    "personal email",
		Secret:   "hunter2-but-longer",
		Category: models.CategoryEmail,
		Notes:    "nothing special",
	}
}

func TestRecordValidator_Validate(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *models.Record)
		fields  []string
		wantErr error
	}{
		{
			name:   "valid record",
			mutate: func(r *models.Record) {},
		},
		{
			name:    "empty title",
			mutate:  func(r *models.Record) { r.Title = "" },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "whitespace title",
			mutate:  func(r *models.Record) { r.Title = "   " },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "title too long",
			mutate:  func(r *models.Record) { r.Title = strings.Repeat("x", 257) },
			wantErr: ErrTitleTooLong,
		},
		{
			name:    "empty secret",
			mutate:  func(r *models.Record) { r.Secret = "" },
			wantErr: ErrEmptySecret,
		},
		{
			name:    "secret too long",
			mutate:  func(r *models.Record) { r.Secret = strings.Repeat("x", 4097) },
			wantErr: ErrSecretTooLong,
		},
		{
			name:    "locked placeholder as secret",
			mutate:  func(r *models.Record) { r.Secret = "[LOCKED]" },
			wantErr: ErrPlaceholderValue,
		},
		{
			name:   "empty category is fine",
			mutate: func(r *models.Record) { r.Category = "" },
		},
		{
			name:    "unknown category",
			mutate:  func(r *models.Record) { r.Category = "Pets" },
			wantErr: ErrUnknownCategory,
		},
		{
			name:    "notes too long",
			mutate:  func(r *models.Record) { r.Notes = strings.Repeat("x", 8193) },
			wantErr: ErrNotesTooLong,
		},
		{
			name:    "scoped to title skips bad secret",
			mutate:  func(r *models.Record) { r.Secret = "" },
			fields:  []string{FieldTitle},
			wantErr: nil,
		},
		{
			name:    "unknown field name",
			mutate:  func(r *models.Record) {},
			fields:  []string{"website"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(&record)

			err := v.Validate(ctx, record, tt.fields...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRecordValidator_ValidatePointer(t *testing.T) {
	v := NewRecordValidator()
	record := validRecord()

	require.NoError(t, v.Validate(context.Background(), &record))
}

func TestRecordValidator_UnsupportedType(t *testing.T) {
	v := NewRecordValidator()

	err := v.Validate(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
