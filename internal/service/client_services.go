// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
)

type ClientServices struct {
	StudentListService ClientStudentListService
	AttachmentService  ClientAttachmentReconciler
	DraftService       ClientDraftService
	BatchDeleteService ClientBatchDeleteService
}

func NewClientServices(gateway adapter.DocumentGateway, adapterCfg config.ClientAdapter, ids IDGenerator, logger *logger.Logger) *ClientServices {
	listSvc := NewClientStudentListService(gateway, adapterCfg.EntitySet, logger)
	attachmentSvc := NewClientAttachmentReconciler(gateway, logger)

	return &ClientServices{
		StudentListService: listSvc,
		AttachmentService:  attachmentSvc,
		DraftService:       NewClientDraftService(gateway, attachmentSvc, ids, adapterCfg.EntitySet, logger),
		BatchDeleteService: NewClientBatchDeleteService(gateway, listSvc, ids, adapterCfg.EntitySet, logger),
	}
}
