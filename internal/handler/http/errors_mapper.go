// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-draft-keeper/internal/odata"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/internal/validators"
	"github.com/MKhiriev/go-draft-keeper/models"
)

const multipleErrorsMessage = "Multiple errors occurred. Please see the details for more information."

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrStudentNotFound:     http.StatusNotFound,
	service.ErrStudentExists:       http.StatusConflict,
	service.ErrDraftExists:         http.StatusConflict,
	service.ErrActiveReadOnly:      http.StatusBadRequest,
	service.ErrAttachmentNotFound:  http.StatusNotFound,
	service.ErrAttachmentExists:    http.StatusConflict,
	service.ErrUnknownField:        http.StatusBadRequest,
	service.ErrInvalidFieldValue:   http.StatusBadRequest,

	odata.ErrInvalidPath:   http.StatusBadRequest,
	odata.ErrInvalidFilter: http.StatusBadRequest,

	ErrUnknownResource:      http.StatusNotFound,
	ErrUnsupportedOperation: http.StatusMethodNotAllowed,
	ErrInvalidJSON:          http.StatusBadRequest,
	ErrActionKey:            http.StatusBadRequest,

	store.ErrNotFound:             http.StatusNotFound,
	store.ErrAlreadyExists:        http.StatusConflict,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorEnvelope renders err as an OData error body. Validation failures carry
// one detail per violated rule; internal errors hide their text.
func errorEnvelope(status int, err error) models.ErrorEnvelope {
	body := models.ErrorBody{
		Code:    strconv.Itoa(status),
		Message: err.Error(),
	}

	var validationErr *validators.ValidationError
	switch {
	case errors.As(err, &validationErr) && len(validationErr.Messages) > 0:
		body.Details = validationErr.Messages
		body.Message = multipleErrorsMessage
		if len(validationErr.Messages) == 1 {
			body.Message = validationErr.Messages[0].Text()
			body.Target = validationErr.Messages[0].Target
		}
	case status >= http.StatusInternalServerError:
		body.Message = http.StatusText(status)
	}

	return models.ErrorEnvelope{Error: body}
}
