// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.ServerHTTP

	// router is set by Init and used to dispatch $batch operations.
	router *chi.Mux

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerHTTP, logger *logger.Logger) *Handler {
	logger.Info().Str("service_path", cfg.ServicePath).Str("entity_set", cfg.EntitySet).Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
