package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/credvault/credvault/internal/logger"
	"github.com/credvault/credvault/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// passCipher implements RecordCipher without touching any of the fields.
type passCipher struct {
	ready bool
	// refs of records reported as needing encryption
	plaintext map[string]bool
	// refs of records whose encryption/decryption must fail
	failing map[string]bool
	// encrypted collects ids passed to EncryptRecord
	encrypted []string
}

func (p *passCipher) EncryptRecord(_ context.Context, record models.Record) (models.Record, error) {
	if p.failing[record.ID] {
		return models.Record{}, errors.New("encrypt failed")
	}
	p.encrypted = append(p.encrypted, record.ID)
	record.IsEncrypted = true
	record.EncryptionVersion = models.EncryptionVersionCurrent
	return record, nil
}

func (p *passCipher) DecryptRecord(_ context.Context, record models.Record) (models.Record, error) {
	if p.failing[record.ID] {
		return models.Record{}, errors.New("decrypt failed")
	}
	return record, nil
}

func (p *passCipher) NeedsEncryption(record models.Record) bool {
	return p.plaintext[record.ID]
}

func (p *passCipher) Ready() bool { return p.ready }

func newTestCache(t *testing.T, db *sql.DB, cipher RecordCipher) LocalCache {
	t.Helper()
	if cipher == nil {
		cipher = &passCipher{ready: true}
	}
	return NewRecordCache(newDBFromSQL(db), cipher, logger.Nop())
}

func recordsJSON(t *testing.T, records []models.Record) string {
	t.Helper()
	data, err := json.Marshal(records)
	require.NoError(t, err)
	return string(data)
}

func expectGetValue(mock sqlmock.Sqlmock, name, value string) {
	mock.ExpectQuery("SELECT value").
		WithArgs(name).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(value))
}

func expectGetValueMissing(mock sqlmock.Sqlmock, name string) {
	mock.ExpectQuery("SELECT value").
		WithArgs(name).
		WillReturnError(sql.ErrNoRows)
}

func expectMetadata(mock sqlmock.Sqlmock, meta models.SyncMetadata) {
	expectGetValue(mock, lastSyncKey, "0")
	expectGetValue(mock, encryptionEnabledKey, boolString(meta.EncryptionEnabled))
	expectGetValue(mock, migrationCompletedKey, boolString(meta.MigrationCompleted))
	expectGetValue(mock, cloudBackupEnabledKey, boolString(meta.CloudBackupEnabled))
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func TestLoadRaw_EmptyCache(t *testing.T) {
	db, mock := newTestDB(t)
	expectGetValueMissing(mock, recordsKey)

	cache := newTestCache(t, db, nil)
	records, err := cache.LoadRaw(testContext())

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadRaw_ReturnsStoredRecords(t *testing.T) {
	db, mock := newTestDB(t)
	stored := []models.Record{
		{ID: "r1", Title: "bank", IsEncrypted: true},
		{ID: "r2", Title: "mail"},
	}
	expectGetValue(mock, recordsKey, recordsJSON(t, stored))

	cache := newTestCache(t, db, nil)
	records, err := cache.LoadRaw(testContext())

	require.NoError(t, err)
	assert.Equal(t, stored, records)
}

func TestLoadRaw_CorruptBlob(t *testing.T) {
	db, mock := newTestDB(t)
	expectGetValue(mock, recordsKey, "{not json")

	cache := newTestCache(t, db, nil)
	records, err := cache.LoadRaw(testContext())

	assert.Nil(t, records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode cached records")
}

func TestSave_WritesBlobInTransaction(t *testing.T) {
	db, mock := newTestDB(t)
	records := []models.Record{{ID: "r1", Title: "bank"}}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO vault_kv").
		WithArgs(recordsKey, recordsJSON(t, records)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	cache := newTestCache(t, db, nil)
	require.NoError(t, cache.Save(testContext(), records))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_NilRecordsStoresEmptyArray(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO vault_kv").
		WithArgs(recordsKey, "[]").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	cache := newTestCache(t, db, nil)
	require.NoError(t, cache.Save(testContext(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_ExecError(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO vault_kv").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	cache := newTestCache(t, db, nil)
	err := cache.Save(testContext(), []models.Record{{ID: "r1"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSave_BeginError(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	cache := newTestCache(t, db, nil)
	err := cache.Save(testContext(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestSave_CommitError(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO vault_kv").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(errors.New("io error"))

	cache := newTestCache(t, db, nil)
	err := cache.Save(testContext(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestUpsert_ReplacesById(t *testing.T) {
	db, mock := newTestDB(t)
	stored := []models.Record{{ID: "r1", Title: "old"}, {ID: "r2"}}
	expectGetValue(mock, recordsKey, recordsJSON(t, stored))

	updated := models.Record{ID: "r1", Title: "new"}
	want := recordsJSON(t, []models.Record{updated, {ID: "r2"}})

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO vault_kv").
		WithArgs(recordsKey, want).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	cache := newTestCache(t, db, nil)
	require.NoError(t, cache.Upsert(testContext(), updated))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_MatchesByDocumentRef(t *testing.T) {
	db, mock := newTestDB(t)
	stored := []models.Record{{ID: "r1", DocumentRef: "doc-9", Title: "old"}}
	expectGetValue(mock, recordsKey, recordsJSON(t, stored))

	updated := models.Record{ID: "other-local-id", DocumentRef: "doc-9", Title: "new"}
	want := recordsJSON(t, []models.Record{updated})

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO vault_kv").
		WithArgs(recordsKey, want).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	cache := newTestCache(t, db, nil)
	require.NoError(t, cache.Upsert(testContext(), updated))
}

func TestUpsert_AppendsNewRecord(t *testing.T) {
	db, mock := newTestDB(t)
	expectGetValueMissing(mock, recordsKey)

	added := models.Record{ID: "r1", Title: "fresh"}
	want := recordsJSON(t, []models.Record{added})

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO vault_kv").
		WithArgs(recordsKey, want).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	cache := newTestCache(t, db, nil)
	require.NoError(t, cache.Upsert(testContext(), added))
}

func TestRemove_ById(t *testing.T) {
	db, mock := newTestDB(t)
	stored := []models.Record{{ID: "r1"}, {ID: "r2"}}
	expectGetValue(mock, recordsKey, recordsJSON(t, stored))

	want := recordsJSON(t, []models.Record{{ID: "r2"}})

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO vault_kv").
		WithArgs(recordsKey, want).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	cache := newTestCache(t, db, nil)
	require.NoError(t, cache.Remove(testContext(), "r1"))
}

func TestRemove_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	expectGetValue(mock, recordsKey, recordsJSON(t, []models.Record{{ID: "r1"}}))

	cache := newTestCache(t, db, nil)
	err := cache.Remove(testContext(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestClear_WipesEverything(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec("DELETE FROM vault_kv").
		WillReturnResult(sqlmock.NewResult(0, 5))

	cache := newTestCache(t, db, nil)
	require.NoError(t, cache.Clear(testContext()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetadata_MissingKeysYieldZeroValues(t *testing.T) {
	db, mock := newTestDB(t)
	expectGetValueMissing(mock, lastSyncKey)
	expectGetValueMissing(mock, encryptionEnabledKey)
	expectGetValueMissing(mock, migrationCompletedKey)
	expectGetValueMissing(mock, cloudBackupEnabledKey)

	cache := newTestCache(t, db, nil)
	meta, err := cache.Metadata(testContext())

	require.NoError(t, err)
	assert.Equal(t, models.SyncMetadata{}, meta)
}

func TestMetadata_ParsesStoredValues(t *testing.T) {
	db, mock := newTestDB(t)
	expectGetValue(mock, lastSyncKey, "1756700000000")
	expectGetValue(mock, encryptionEnabledKey, "true")
	expectGetValue(mock, migrationCompletedKey, "true")
	expectGetValue(mock, cloudBackupEnabledKey, "false")

	cache := newTestCache(t, db, nil)
	meta, err := cache.Metadata(testContext())

	require.NoError(t, err)
	assert.Equal(t, int64(1756700000000), meta.LastSyncAt)
	assert.True(t, meta.EncryptionEnabled)
	assert.True(t, meta.MigrationCompleted)
	assert.False(t, meta.CloudBackupEnabled)
}

func TestSetMetadata_WritesAllKeysInOneTransaction(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	// map iteration order is not fixed, match any of the four keys
	for i := 0; i < 4; i++ {
		mock.ExpectExec("INSERT INTO vault_kv").
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	cache := newTestCache(t, db, nil)
	err := cache.SetMetadata(testContext(), models.SyncMetadata{
		LastSyncAt:        1756700000000,
		EncryptionEnabled: true,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad_DecryptsRecords(t *testing.T) {
	db, mock := newTestDB(t)
	stored := []models.Record{{ID: "r1", IsEncrypted: true}}
	expectGetValue(mock, recordsKey, recordsJSON(t, stored))
	expectMetadata(mock, models.SyncMetadata{MigrationCompleted: true})

	cache := newTestCache(t, db, &passCipher{ready: true})
	records, err := cache.Load(testContext())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].Locked)
}

func TestLoad_UndecryptableRecordComesBackLocked(t *testing.T) {
	db, mock := newTestDB(t)
	stored := []models.Record{{ID: "bad", IsEncrypted: true}, {ID: "good", IsEncrypted: true}}
	expectGetValue(mock, recordsKey, recordsJSON(t, stored))
	expectMetadata(mock, models.SyncMetadata{MigrationCompleted: true})

	cipher := &passCipher{ready: true, failing: map[string]bool{"bad": true}}
	cache := newTestCache(t, db, cipher)
	records, err := cache.Load(testContext())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[0].Locked)
	assert.False(t, records[1].Locked)
}

func TestLoad_MigrationPassEncryptsPlaintext(t *testing.T) {
	db, mock := newTestDB(t)
	stored := []models.Record{{ID: "plain"}, {ID: "done", IsEncrypted: true}}
	expectGetValue(mock, recordsKey, recordsJSON(t, stored))
	expectMetadata(mock, models.SyncMetadata{})

	// migration saves the blob and stamps the metadata
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO vault_kv").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	for i := 0; i < 4; i++ {
		mock.ExpectExec("INSERT INTO vault_kv").
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	cipher := &passCipher{ready: true, plaintext: map[string]bool{"plain": true}}
	cache := newTestCache(t, db, cipher)
	records, err := cache.Load(testContext())

	require.NoError(t, err)
	assert.Equal(t, []string{"plain"}, cipher.encrypted)
	require.Len(t, records, 2)
	assert.True(t, records[0].IsEncrypted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad_MigrationSkipsFailingRecordAndLocksIt(t *testing.T) {
	db, mock := newTestDB(t)
	stored := []models.Record{{ID: "stuck"}, {ID: "plain"}}
	expectGetValue(mock, recordsKey, recordsJSON(t, stored))
	expectMetadata(mock, models.SyncMetadata{})

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO vault_kv").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	for i := 0; i < 4; i++ {
		mock.ExpectExec("INSERT INTO vault_kv").
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	cipher := &passCipher{
		ready:     true,
		plaintext: map[string]bool{"stuck": true, "plain": true},
		failing:   map[string]bool{"stuck": true},
	}
	cache := newTestCache(t, db, cipher)
	records, err := cache.Load(testContext())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[0].Locked)
	assert.False(t, records[0].IsEncrypted)
	assert.True(t, records[1].IsEncrypted)
}

func TestLoad_MigrationDeferredWithoutActiveKey(t *testing.T) {
	db, mock := newTestDB(t)
	stored := []models.Record{{ID: "plain"}}
	expectGetValue(mock, recordsKey, recordsJSON(t, stored))
	expectMetadata(mock, models.SyncMetadata{})

	cipher := &passCipher{ready: false, plaintext: map[string]bool{"plain": true}}
	cache := newTestCache(t, db, cipher)
	records, err := cache.Load(testContext())

	require.NoError(t, err)
	assert.Empty(t, cipher.encrypted)
	require.Len(t, records, 1)
	assert.False(t, records[0].IsEncrypted)
	// no writes happened, migration stays pending
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad_NoPlaintextStampsMigrationWithoutRewrite(t *testing.T) {
	db, mock := newTestDB(t)
	stored := []models.Record{{ID: "done", IsEncrypted: true}}
	expectGetValue(mock, recordsKey, recordsJSON(t, stored))
	expectMetadata(mock, models.SyncMetadata{})

	// only the metadata stamp, no blob rewrite
	mock.ExpectBegin()
	for i := 0; i < 4; i++ {
		mock.ExpectExec("INSERT INTO vault_kv").
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	cache := newTestCache(t, db, &passCipher{ready: true})
	_, err := cache.Load(testContext())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetValue_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectQuery("SELECT value").
		WithArgs(recordsKey).
		WillReturnError(errors.New("db gone"))

	cache := newTestCache(t, db, nil)
	_, err := cache.LoadRaw(testContext())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.True(t, strings.Contains(err.Error(), "db gone"))
}
