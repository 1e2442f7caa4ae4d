// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
)

const defaultJanitorInterval = 5 * time.Minute

// DraftJanitor discards drafts that were not touched for longer than the
// configured TTL. Abandoned drafts otherwise block Edit with
// PreserveChanges and keep HasDraftEntity set on the active instance.
type DraftJanitor struct {
	drafts   service.DraftService
	ttl      time.Duration
	interval time.Duration
	logger   *logger.Logger
}

// NewDraftJanitor creates a janitor sweeping every cfg.JanitorInterval. A
// non-positive interval defaults to 5 minutes.
func NewDraftJanitor(drafts service.DraftService, cfg config.ServerWorkers, logger *logger.Logger) *DraftJanitor {
	interval := cfg.JanitorInterval
	if interval <= 0 {
		interval = defaultJanitorInterval
	}

	return &DraftJanitor{
		drafts:   drafts,
		ttl:      cfg.DraftTTL,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once per interval until ctx is cancelled. Sweep errors are
// logged and the next tick retries.
func (j *DraftJanitor) Run(ctx context.Context) {
	log := j.logger.With().Str("func", "DraftJanitor.Run").Logger()
	log.Info().Dur("ttl", j.ttl).Dur("interval", j.interval).Msg("draft janitor started")

	t := time.NewTicker(j.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("draft janitor stopped")
			return
		case <-t.C:
			_, _ = j.Sweep(ctx)
		}
	}
}

// Sweep discards the stale drafts once and returns how many were removed.
func (j *DraftJanitor) Sweep(ctx context.Context) (int, error) {
	purged, err := j.drafts.PurgeStaleDrafts(ctx, j.ttl)
	if err != nil {
		j.logger.Err(err).Str("func", "DraftJanitor.Sweep").Msg("purging stale drafts failed")
		return 0, err
	}

	if purged > 0 {
		j.logger.Info().Str("func", "DraftJanitor.Sweep").Int("purged", purged).Msg("stale drafts discarded")
	}
	return purged, nil
}
