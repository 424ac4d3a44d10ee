package workers

import (
	"context"
	"time"

	"github.com/credvault/credvault/internal/logger"
	"github.com/credvault/credvault/internal/service"
)

// RefreshWorker periodically pulls the remote record set so the local cache
// stays a warm mirror between user actions. Offline ticks fall through to the
// cache inside the engine and are not errors worth surfacing.
type RefreshWorker struct {
	vault    service.VaultService
	interval time.Duration
	logger   *logger.Logger

	stop chan struct{}
	done chan struct{}
}

func NewRefreshWorker(vault service.VaultService, interval time.Duration, logger *logger.Logger) *RefreshWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &RefreshWorker{
		vault:    vault,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (w *RefreshWorker) Run() {
	go w.loop()
}

func (w *RefreshWorker) loop() {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			w.refresh()
		}
	}
}

func (w *RefreshWorker) refresh() {
	session := w.vault.Session()
	if !session.Active() {
		return
	}

	ctx := w.logger.WithContext(context.Background())
	if _, err := w.vault.Load(ctx); err != nil {
		w.logger.Warn().
			Str("func", "RefreshWorker.refresh").
			Err(err).
			Msg("periodic refresh failed")
	}
}

func (w *RefreshWorker) Stop() {
	close(w.stop)
	<-w.done
}
