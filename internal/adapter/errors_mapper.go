// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-draft-keeper/internal/odata"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusConflict:            ErrConflict,
	http.StatusPreconditionFailed:  ErrPreconditionFailed,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return NewServiceError(resp.StatusCode(), resp.Body())
}

// NewServiceError builds the error for a non-2xx response from its status and
// body. An OData error envelope in body fills Code, Message and Messages.
func NewServiceError(status int, body []byte) *ServiceError {
	kind, ok := statusErrors[status]
	if !ok {
		kind = ErrUnexpectedStatus
	}

	svcErr := &ServiceError{
		Status: status,
		Body:   strings.TrimSpace(string(body)),
		kind:   kind,
	}

	if env, ok := odata.DecodeErrorEnvelope(body); ok {
		svcErr.Code = env.Error.Code
		svcErr.Message = env.Error.Message
		svcErr.Messages = env.Messages()
	}

	return svcErr
}
