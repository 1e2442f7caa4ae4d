// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the workers enabled by cfg. The draft janitor is skipped
// when DraftTTL is not positive.
func NewWorkers(services *service.Services, cfg config.ServerWorkers, logger *logger.Logger) *Workers {
	w := &Workers{logger: logger}

	if cfg.DraftTTL > 0 {
		w.workers = append(w.workers, NewDraftJanitor(services.DraftService, cfg, logger))
	} else {
		logger.Info().Msg("draft janitor disabled")
	}

	return w
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()

	if w.logger != nil {
		w.logger.Info().Int("workers", len(w.workers)).Msg("workers stopped")
	}
}
