// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const batchSegment = "$batch"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Route(h.servicePath(), func(r chi.Router) {
		r.Get("/", h.serviceDocument)
		r.Post("/"+batchSegment, h.batch)

		r.Get("/*", h.read)
		r.Post("/*", h.create)
		r.Patch("/*", h.update)
		r.Delete("/*", h.remove)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	h.router = router
	return router
}

func (h *Handler) servicePath() string {
	return "/" + strings.Trim(h.cfg.ServicePath, "/")
}
