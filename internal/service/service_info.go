// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/models"
)

const (
	unknownVersion = "N/A"
	metadataURL    = "$metadata"
	entitySetKind  = "EntitySet"
)

type serviceInfoService struct {
	appVersion string
	entitySet  string

	logger *logger.Logger
}

func NewServiceInfoService(version, entitySet string, logger *logger.Logger) ServiceInfoService {
	if version == "" {
		version = unknownVersion
	}

	return &serviceInfoService{
		appVersion: version,
		entitySet:  entitySet,
		logger:     logger,
	}
}

func (s *serviceInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *serviceInfoService) ServiceDocument(ctx context.Context) models.ServiceDocument {
	return models.ServiceDocument{
		Context: metadataURL,
		Value: []models.ServiceDocumentEntry{
			{Name: s.entitySet, Kind: entitySetKind, URL: s.entitySet},
		},
	}
}
