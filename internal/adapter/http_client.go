package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/credvault/credvault/internal/utils"
	"github.com/credvault/credvault/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

// HTTPClientConfig carries the settings needed to talk to the remote
// document-store API.
type HTTPClientConfig struct {
	BaseURL string
	HashKey string
	Timeout time.Duration
}

type httpRemoteStore struct {
	client  *resty.Client
	hashKey string

	mu    sync.RWMutex
	token string
}

func NewHTTPRemoteStore(cfg HTTPClientConfig) RemoteStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	utils.InitHasherPool(cfg.HashKey)

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpRemoteStore{client: cli, hashKey: cfg.HashKey}
}

func (h *httpRemoteStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteStore) Session() (models.Session, error) {
	token := h.Token()
	if token == "" {
		return models.Session{}, errors.New("no token set")
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return models.Session{}, fmt.Errorf("parse session token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return models.Session{}, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return models.Session{}, errors.New("token carries no subject")
	}

	session := models.Session{AccountID: sub, Token: token}
	if exp, expErr := claims.GetExpirationTime(); expErr == nil && exp != nil {
		session.ExpiresAt = exp.Time
	}

	return session, nil
}

func (h *httpRemoteStore) Put(ctx context.Context, collection, id string, record models.Record) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("HashSHA256", computeTransportHash(record, h.hashKey)).
		SetPathParam("collection", collection).
		SetPathParam("id", id).
		SetBody(record).
		Put("/api/collections/{collection}/documents/{id}")
	if err != nil {
		return fmt.Errorf("put document request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) Get(ctx context.Context, collection string, filter models.RemoteFilter) ([]models.Record, error) {
	req := h.authedRequest(ctx).
		SetPathParam("collection", collection)
	if filter.ScopeHash != "" {
		req.SetQueryParam("scope_hash", filter.ScopeHash)
	}
	if filter.OwnerID != "" {
		req.SetQueryParam("owner", filter.OwnerID)
	}

	resp, err := req.Get("/api/collections/{collection}/documents")
	if err != nil {
		return nil, fmt.Errorf("get documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.Record
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode documents response: %w", err)
	}

	return records, nil
}

func (h *httpRemoteStore) Delete(ctx context.Context, collection, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("collection", collection).
		SetPathParam("id", id).
		Delete("/api/collections/{collection}/documents/{id}")
	if err != nil {
		return fmt.Errorf("delete document request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) GetSnapshot(ctx context.Context, ownerScopeHash string) (models.BackupSnapshot, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("owner", ownerScopeHash).
		Get("/api/backups/{owner}")
	if err != nil {
		return models.BackupSnapshot{}, fmt.Errorf("get snapshot request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BackupSnapshot{}, err
	}

	var snapshot models.BackupSnapshot
	if err = json.Unmarshal(resp.Body(), &snapshot); err != nil {
		return models.BackupSnapshot{}, fmt.Errorf("decode snapshot response: %w", err)
	}

	return snapshot, nil
}

func (h *httpRemoteStore) PutSnapshot(ctx context.Context, ownerScopeHash string, snapshot models.BackupSnapshot) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("HashSHA256", computeTransportHash(snapshot, h.hashKey)).
		SetPathParam("owner", ownerScopeHash).
		SetBody(snapshot).
		Put("/api/backups/{owner}")
	if err != nil {
		return fmt.Errorf("put snapshot request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func computeTransportHash(v any, key string) string {
	if key == "" {
		return ""
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return hex.EncodeToString(utils.Hash(payload))
}
