package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/credvault/credvault/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, serverURL string) *httpRemoteStore {
	t.Helper()
	s := NewHTTPRemoteStore(HTTPClientConfig{
		BaseURL: serverURL,
		HashKey: "testhashkey",
	})
	return s.(*httpRemoteStore)
}

func signedToken(t *testing.T, subject string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": subject}
	if expiresIn != 0 {
		claims["exp"] = time.Now().Add(expiresIn).Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

// ── Session ─────────────────────────────────────────────────────────────────

func TestSession_ParsesSubjectAndExpiry(t *testing.T) {
	s := newTestStore(t, "http://localhost:0")
	s.SetToken(signedToken(t, "alice@example.com", time.Hour))

	session, err := s.Session()

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", session.AccountID)
	assert.True(t, session.Active())
}

func TestSession_NoToken(t *testing.T) {
	s := newTestStore(t, "http://localhost:0")

	_, err := s.Session()
	require.Error(t, err)
}

func TestSession_MalformedToken(t *testing.T) {
	s := newTestStore(t, "http://localhost:0")
	s.SetToken("definitely-not-a-jwt")

	_, err := s.Session()
	require.Error(t, err)
}

func TestSession_NoSubject(t *testing.T) {
	s := newTestStore(t, "http://localhost:0")
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{}).SignedString([]byte("k"))
	require.NoError(t, err)
	s.SetToken(token)

	_, err = s.Session()
	require.Error(t, err)
}

// ── Put ─────────────────────────────────────────────────────────────────────

func TestPut_Success(t *testing.T) {
	record := models.Record{ID: "r1", Title: "ciphertext", IsEncrypted: true}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/collections/credentials/documents/r1", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("HashSHA256"))
		assert.Contains(t, r.Header.Get("Authorization"), "Bearer ")

		var got models.Record
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, record.ID, got.ID)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	s.SetToken(signedToken(t, "alice", time.Hour))

	require.NoError(t, s.Put(context.Background(), "credentials", "r1", record))
}

func TestPut_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	err := s.Put(context.Background(), "credentials", "r1", models.Record{ID: "r1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestPut_ServerUnreachable(t *testing.T) {
	s := newTestStore(t, "http://127.0.0.1:1")
	err := s.Put(context.Background(), "credentials", "r1", models.Record{ID: "r1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "put document request")
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestGet_FilterByScopeHash(t *testing.T) {
	want := []models.Record{{ID: "r1", IsEncrypted: true}, {ID: "r2", IsEncrypted: true}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/collections/credentials/documents", r.URL.Path)
		assert.Equal(t, "abc123", r.URL.Query().Get("scope_hash"))
		assert.Empty(t, r.URL.Query().Get("owner"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	got, err := s.Get(context.Background(), "credentials", models.RemoteFilter{ScopeHash: "abc123"})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGet_LegacyOwnerFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "alice@example.com", r.URL.Query().Get("owner"))
		_ = json.NewEncoder(w).Encode([]models.Record{})
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	got, err := s.Get(context.Background(), "credentials", models.RemoteFilter{OwnerID: "alice@example.com"})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGet_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{broken"))
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	_, err := s.Get(context.Background(), "credentials", models.RemoteFilter{ScopeHash: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode documents response")
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestDelete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/collections/credentials/documents/doc-9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	require.NoError(t, s.Delete(context.Background(), "credentials", "doc-9"))
}

func TestDelete_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no such document"))
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	err := s.Delete(context.Background(), "credentials", "doc-9")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Snapshots ───────────────────────────────────────────────────────────────

func TestGetSnapshot_Success(t *testing.T) {
	want := models.BackupSnapshot{
		OwnerScopeHash:    "abc123",
		Records:           []models.Record{{ID: "r1", IsEncrypted: true}},
		TotalCount:        1,
		EncryptionVersion: models.EncryptionVersionCurrent,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/backups/abc123", r.URL.Path)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	got, err := s.GetSnapshot(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, want.OwnerScopeHash, got.OwnerScopeHash)
	assert.Equal(t, want.TotalCount, got.TotalCount)
	require.Len(t, got.Records, 1)
}

func TestGetSnapshot_Missing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	_, err := s.GetSnapshot(context.Background(), "abc123")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutSnapshot_Success(t *testing.T) {
	snapshot := models.BackupSnapshot{
		OwnerScopeHash: "abc123",
		Records:        []models.Record{{ID: "r1", IsEncrypted: true}},
		TotalCount:     1,
	}

	var gotHash string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/backups/abc123", r.URL.Path)
		gotHash = r.Header.Get("HashSHA256")

		var got models.BackupSnapshot
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, snapshot.TotalCount, got.TotalCount)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	require.NoError(t, s.PutSnapshot(context.Background(), "abc123", snapshot))
	assert.NotEmpty(t, gotHash)
}

func TestPutSnapshot_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	err := s.PutSnapshot(context.Background(), "abc123", models.BackupSnapshot{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadGateway)
}

// ── Token handling ──────────────────────────────────────────────────────────

func TestSetToken_TrimsWhitespace(t *testing.T) {
	s := newTestStore(t, "http://localhost:0")
	s.SetToken("  token-value  ")
	assert.Equal(t, "token-value", s.Token())
}

func TestAuthedRequest_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]models.Record{})
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	_, err := s.Get(context.Background(), "credentials", models.RemoteFilter{ScopeHash: "x"})
	require.NoError(t, err)
}
