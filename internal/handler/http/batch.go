// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// batch executes the operations of a JSON batch one after another through
// the router and answers with one result per operation. A failed operation
// does not stop the remaining ones.
func (h *Handler) batch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.BatchRequest
	if err := decodeJSON(r, &request, false); err != nil {
		writeError(w, r, err)
		return
	}

	response := models.BatchResponse{Responses: make([]models.BatchResponsePart, 0, len(request.Requests))}
	failed := 0
	for i, part := range request.Requests {
		result := h.dispatchBatchPart(r, part)
		if result.ID == "" {
			result.ID = strconv.Itoa(i + 1)
		}
		if result.Status >= http.StatusBadRequest {
			failed++
		}
		response.Responses = append(response.Responses, result)
	}

	log.Info().Str("func", "*Handler.batch").
		Int("operations", len(request.Requests)).
		Int("failed", failed).
		Msg("batch executed")

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) dispatchBatchPart(r *http.Request, part models.BatchRequestPart) models.BatchResponsePart {
	result := models.BatchResponsePart{ID: part.ID}

	target, err := h.batchTarget(part)
	if err != nil {
		return batchErrorPart(result, err)
	}

	// A fresh route context makes the router match target from the root.
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, chi.NewRouteContext())

	req, err := http.NewRequestWithContext(ctx, part.Method, target, bytes.NewReader(part.Body))
	if err != nil {
		return batchErrorPart(result, fmt.Errorf("%w: %w", ErrUnknownResource, err))
	}
	for name, value := range part.Headers {
		req.Header.Set(name, value)
	}
	if len(part.Body) > 0 && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	if traceID, ok := utils.GetTraceIDFromContext(r.Context()); ok {
		req.Header.Set(traceIDHeader, traceID)
	}

	rec := newBatchPartWriter()
	h.router.ServeHTTP(rec, req)

	result.Status = rec.status
	result.Body = rec.jsonBody()
	result.Headers = rec.resultHeaders()
	return result
}

// batchTarget resolves the URL of an operation against the service path.
func (h *Handler) batchTarget(part models.BatchRequestPart) (string, error) {
	if part.Method == "" || part.URL == "" {
		return "", fmt.Errorf("%w: operation needs method and url", ErrInvalidJSON)
	}

	target := strings.TrimPrefix(part.URL, "/")
	if strings.HasPrefix(target, batchSegment) {
		return "", fmt.Errorf("%w: nested batch", ErrUnsupportedOperation)
	}

	prefix := strings.TrimPrefix(h.servicePathPrefix(), "/")
	if prefix != "" && strings.HasPrefix(target, prefix+"/") {
		return "/" + target, nil
	}
	return h.servicePathPrefix() + "/" + target, nil
}

func batchErrorPart(result models.BatchResponsePart, err error) models.BatchResponsePart {
	result.Status = statusFromError(err)
	body, _ := json.Marshal(errorEnvelope(result.Status, err))
	result.Body = body
	result.Headers = map[string]string{"Content-Type": contentTypeJSON}
	return result
}

// batchPartWriter collects the response of one batch operation.
type batchPartWriter struct {
	header      http.Header
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func newBatchPartWriter() *batchPartWriter {
	return &batchPartWriter{header: make(http.Header), status: http.StatusOK}
}

func (w *batchPartWriter) Header() http.Header {
	return w.header
}

func (w *batchPartWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
}

func (w *batchPartWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.body.Write(b)
}

// jsonBody returns the body as raw JSON. Non-JSON payloads are embedded as a
// JSON string.
func (w *batchPartWriter) jsonBody() json.RawMessage {
	raw := bytes.TrimSpace(w.body.Bytes())
	if len(raw) == 0 {
		return nil
	}
	if json.Valid(raw) {
		return json.RawMessage(raw)
	}
	quoted, _ := json.Marshal(string(raw))
	return quoted
}

func (w *batchPartWriter) resultHeaders() map[string]string {
	headers := make(map[string]string)
	for _, name := range []string{"Content-Type", "Location"} {
		if value := w.header.Get(name); value != "" {
			headers[name] = value
		}
	}
	if len(headers) == 0 {
		return nil
	}
	return headers
}
