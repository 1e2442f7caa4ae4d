// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/models"
)

func TestServiceInfoService_GetAppVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{name: "configured", version: "v1.2.3-beta+build.42", want: "v1.2.3-beta+build.42"},
		{name: "not configured", version: "", want: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewServiceInfoService(tt.version, "Students", logger.Nop())

			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestServiceInfoService_ServiceDocument(t *testing.T) {
	svc := NewServiceInfoService("1.0.0", "Students", logger.Nop())

	doc := svc.ServiceDocument(context.Background())

	assert.Equal(t, "$metadata", doc.Context)
	require.Len(t, doc.Value, 1)
	assert.Equal(t, models.ServiceDocumentEntry{Name: "Students", Kind: "EntitySet", URL: "Students"}, doc.Value[0])
}
