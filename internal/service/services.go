// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
)

// Services bundles the document service business logic.
type Services struct {
	DraftService      DraftService
	AttachmentService AttachmentService
	InfoService       ServiceInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerConfig, logger *logger.Logger) *Services {
	attachments := NewAttachmentService(storages.StudentRepository, storages.AttachmentRepository, logger)
	drafts := NewDraftValidationService(storages.AttachmentRepository).
		Wrap(NewDraftService(storages.StudentRepository, logger))

	return &Services{
		DraftService:      drafts,
		AttachmentService: attachments,
		InfoService:       NewServiceInfoService(cfg.Version, cfg.HTTP.EntitySet, logger),
	}
}
