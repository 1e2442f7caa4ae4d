// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/odata"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type clientBatchDeleteService struct {
	gateway   adapter.DocumentGateway
	list      ListRefresher
	ids       IDGenerator
	entitySet string
	logger    *logger.Logger
}

func NewClientBatchDeleteService(gateway adapter.DocumentGateway, list ListRefresher, ids IDGenerator, entitySet string, logger *logger.Logger) ClientBatchDeleteService {
	return &clientBatchDeleteService{
		gateway:   gateway,
		list:      list,
		ids:       ids,
		entitySet: entitySet,
		logger:    logger,
	}
}

func (b *clientBatchDeleteService) DeleteMany(ctx context.Context, selected []models.Student) (models.DeleteSummary, error) {
	if len(selected) == 0 {
		return models.DeleteSummary{}, ErrNothingSelected
	}

	log := b.logger.With().Str("func", "clientBatchDeleteService.DeleteMany").Logger()

	groupID := b.ids.BatchGroupID()
	for _, doc := range selected {
		path := odata.EntityPath(b.entitySet, models.EntityKey{Id: doc.Id, IsActiveEntity: true})
		b.gateway.QueueDelete(groupID, path)
	}

	results, err := b.gateway.SubmitBatch(ctx, groupID)
	b.refresh(ctx)
	if err != nil {
		log.Err(err).Str("group", groupID).Msg("submit batch failed")
		return models.DeleteSummary{}, &Failure{Kind: FailureTransport, Text: deleteFailedText, Err: err}
	}

	var summary models.DeleteSummary
	for _, res := range results {
		if res.Succeeded {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}
	// Operations without a result in the response count as failed.
	if missing := len(selected) - len(results); missing > 0 {
		summary.Failed += missing
	}

	log.Debug().
		Str("group", groupID).
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Msg("batch delete finished")

	if summary.Failed > 0 {
		return summary, &Failure{Kind: FailurePartialBatch, Failed: summary.Failed}
	}
	return summary, nil
}

func (b *clientBatchDeleteService) refresh(ctx context.Context) {
	if b.list == nil {
		return
	}
	if err := b.list.Refresh(ctx); err != nil {
		b.logger.Warn().Str("func", "clientBatchDeleteService.refresh").Err(err).Msg("refresh list failed")
	}
}
