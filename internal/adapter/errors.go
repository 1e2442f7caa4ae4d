// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-draft-keeper/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrConflict            = errors.New("conflict")
	ErrPreconditionFailed  = errors.New("precondition failed")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrEmptyBatch = errors.New("no operations queued for batch group")
)

// ServiceError is a non-2xx answer of the document service.
type ServiceError struct {
	// Status is the HTTP status code.
	Status int

	// Code and Message are the top-level fields of the error envelope.
	Code    string
	Message string

	// Messages are the structured detail messages, possibly empty.
	Messages []models.ServiceMessage

	// Body is the raw response body, used when no envelope was returned.
	Body string

	kind error
}

// Error implements error.
func (e *ServiceError) Error() string {
	text := e.Message
	if text == "" {
		text = e.Body
	}
	if text == "" {
		return fmt.Sprintf("%s (http %d)", e.kind, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.kind, text)
}

// Unwrap returns the sentinel error of the status class.
func (e *ServiceError) Unwrap() error {
	return e.kind
}
