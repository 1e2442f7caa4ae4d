// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
	"github.com/MKhiriev/go-draft-keeper/models"
)

func decodeBatch(t *testing.T, rr *httptest.ResponseRecorder) models.BatchResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rr.Code)
	var response models.BatchResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	return response
}

func TestBatch_PartsRunIndependently(t *testing.T) {
	f := newHandlerFixture(t)

	two := models.EntityKey{Id: "2", IsActiveEntity: true}
	gomock.InOrder(
		f.drafts.EXPECT().DeleteStudent(gomock.Any(), activeOne).Return(nil),
		f.drafts.EXPECT().DeleteStudent(gomock.Any(), two).Return(service.ErrStudentNotFound),
	)

	body := `{"requests":[
		{"id":"d1","atomicityGroup":"g1","method":"DELETE","url":"Students(Id='1',IsActiveEntity=true)"},
		{"id":"d2","atomicityGroup":"g2","method":"DELETE","url":"/Students(Id='2',IsActiveEntity=true)"},
		{"id":"d3","method":"POST","url":"$batch"}
	]}`
	response := decodeBatch(t, f.do(http.MethodPost, "/$batch", body))

	require.Len(t, response.Responses, 3)
	assert.Equal(t, "d1", response.Responses[0].ID)
	assert.Equal(t, http.StatusNoContent, response.Responses[0].Status)
	assert.Empty(t, response.Responses[0].Body)

	assert.Equal(t, "d2", response.Responses[1].ID)
	assert.Equal(t, http.StatusNotFound, response.Responses[1].Status)
	var envelope models.ErrorEnvelope
	require.NoError(t, json.Unmarshal(response.Responses[1].Body, &envelope))
	assert.Equal(t, "404", envelope.Error.Code)

	assert.Equal(t, "d3", response.Responses[2].ID)
	assert.Equal(t, http.StatusMethodNotAllowed, response.Responses[2].Status)
}

func TestBatch_ReadAndCreate(t *testing.T) {
	f := newHandlerFixture(t)

	f.drafts.EXPECT().GetStudent(gomock.Any(), activeOne).Return(models.Student{Id: "1", IsActiveEntity: true}, nil)
	f.drafts.EXPECT().CreateDraft(gomock.Any(), models.Student{Id: "5"}).Return(models.Student{Id: "5"}, nil)

	body := `{"requests":[
		{"method":"GET","url":"Students(Id='1',IsActiveEntity=true)"},
		{"method":"POST","url":"Students","body":{"Id":"5"}}
	]}`
	response := decodeBatch(t, f.do(http.MethodPost, "/$batch", body))

	require.Len(t, response.Responses, 2)
	assert.Equal(t, "1", response.Responses[0].ID)
	assert.Equal(t, http.StatusOK, response.Responses[0].Status)
	assert.Equal(t, contentTypeJSON, response.Responses[0].Headers["Content-Type"])

	var student models.Student
	require.NoError(t, json.Unmarshal(response.Responses[0].Body, &student))
	assert.True(t, student.IsActiveEntity)

	assert.Equal(t, "2", response.Responses[1].ID)
	assert.Equal(t, http.StatusCreated, response.Responses[1].Status)
	assert.Equal(t, testServicePath+"/Students(Id='5',IsActiveEntity=false)", response.Responses[1].Headers["Location"])
}

func TestBatch_InvalidParts(t *testing.T) {
	f := newHandlerFixture(t)

	body := `{"requests":[{"id":"x","url":"Students"},{"id":"y","method":"GET","url":"Teachers"}]}`
	response := decodeBatch(t, f.do(http.MethodPost, "/$batch", body))

	require.Len(t, response.Responses, 2)
	assert.Equal(t, http.StatusBadRequest, response.Responses[0].Status)
	assert.Equal(t, http.StatusNotFound, response.Responses[1].Status)
}

func TestBatch_MalformedBody(t *testing.T) {
	f := newHandlerFixture(t)

	rr := f.do(http.MethodPost, "/$batch", `{"requests":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBatch_TraceIDIsShared(t *testing.T) {
	f := newHandlerFixture(t)

	var seen string
	f.drafts.EXPECT().DeleteStudent(gomock.Any(), activeOne).
		DoAndReturn(func(ctx context.Context, _ models.EntityKey) error {
			seen, _ = utils.GetTraceIDFromContext(ctx)
			return nil
		})

	req := httptest.NewRequest(http.MethodPost, testServicePath+"/$batch",
		strings.NewReader(`{"requests":[{"method":"DELETE","url":"Students(Id='1',IsActiveEntity=true)"}]}`))
	req.Header.Set(traceIDHeader, "trace-7")
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	decodeBatch(t, rr)
	assert.Equal(t, "trace-7", seen)
	assert.Equal(t, "trace-7", rr.Header().Get(traceIDHeader))
}

func TestBatchTarget(t *testing.T) {
	h := &Handler{cfg: config.ServerHTTP{ServicePath: "/odata/v4/students/"}}

	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{url: "Students", want: "/odata/v4/students/Students"},
		{url: "/Students(Id='1',IsActiveEntity=true)", want: "/odata/v4/students/Students(Id='1',IsActiveEntity=true)"},
		{url: "/odata/v4/students/Students", want: "/odata/v4/students/Students"},
		{url: "$batch", wantErr: true},
		{url: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := h.batchTarget(models.BatchRequestPart{Method: http.MethodGet, URL: tt.url})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBatchPartWriter_NonJSONBody(t *testing.T) {
	w := newBatchPartWriter()
	_, _ = w.Write([]byte("%PDF"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.JSONEq(t, `"%PDF"`, string(w.jsonBody()))
}
