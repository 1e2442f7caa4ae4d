// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailure_Error(t *testing.T) {
	validation := &Failure{Kind: FailureValidation, Messages: []models.ServiceMessage{
		{Message: "Firstname is required", Target: "firstname"},
		{LongtextURL: "/help/age"},
	}}
	assert.Equal(t, "Please fix the highlighted errors.\n\n- Firstname is required\n- /help/age", validation.Error())

	assert.Equal(t, "connection refused", (&Failure{Kind: FailureTransport, Text: "connection refused"}).Error())
	assert.Equal(t, "Unknown error", (&Failure{Kind: FailureTransport}).Error())
	assert.Equal(t, "1 delete operation(s) failed.", (&Failure{Kind: FailurePartialBatch, Failed: 1}).Error())
}

func TestClassifyFailure(t *testing.T) {
	withDetails := &adapter.ServiceError{
		Status:   http.StatusBadRequest,
		Message:  "Multiple errors",
		Messages: []models.ServiceMessage{{Message: "Age must be between 1 and 120", Target: "Age"}},
	}
	f := classifyFailure(fmt.Errorf("activate: %w", withDetails))
	assert.Equal(t, FailureValidation, f.Kind)
	assert.Equal(t, withDetails.Messages, f.Messages)
	assert.ErrorAs(t, f, &withDetails)

	f = classifyFailure(&adapter.ServiceError{Status: http.StatusConflict, Message: "Draft exists"})
	assert.Equal(t, FailureTransport, f.Kind)
	assert.Equal(t, "Draft exists", f.Error())

	f = classifyFailure(&adapter.ServiceError{Status: http.StatusBadGateway, Body: "upstream down"})
	assert.Equal(t, "upstream down", f.Error())

	f = classifyFailure(&adapter.ServiceError{Status: http.StatusBadGateway})
	assert.Equal(t, "Unknown error", f.Error())

	transport := errors.New("dial tcp: connection refused")
	f = classifyFailure(transport)
	assert.Equal(t, FailureTransport, f.Kind)
	assert.Equal(t, "dial tcp: connection refused", f.Error())
	assert.ErrorIs(t, f, transport)

	existing := &Failure{Kind: FailurePartialBatch, Failed: 2}
	require.Same(t, existing, classifyFailure(existing))
}

func TestFailureKind_String(t *testing.T) {
	assert.Equal(t, "validation", FailureValidation.String())
	assert.Equal(t, "transport", FailureTransport.String())
	assert.Equal(t, "partial batch", FailurePartialBatch.String())
	assert.Equal(t, "FailureKind(0)", FailureKind(0).String())
}
