// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/mock"
	"github.com/MKhiriev/go-draft-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testGroupID = "$delete-0190f6a2-7c1e-7d3b-9a55-3c9e2f1b8a40"

func newTestBatchDeleteSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	ClientBatchDeleteService,
	*mock.MockDocumentGateway,
	*mock.MockListRefresher,
	*mock.MockIDGenerator,
) {
	t.Helper()
	gw := mock.NewMockDocumentGateway(ctrl)
	list := mock.NewMockListRefresher(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)
	return NewClientBatchDeleteService(gw, list, ids, testEntitySet, logger.Nop()), gw, list, ids
}

func selectedStudents(ids ...string) []models.Student {
	out := make([]models.Student, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Student{Id: id, IsActiveEntity: true})
	}
	return out
}

func TestClientBatchDeleteService_AllSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gw, list, ids := newTestBatchDeleteSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		ids.EXPECT().BatchGroupID().Return(testGroupID),
		gw.EXPECT().QueueDelete(testGroupID, activePathOf("A")),
		gw.EXPECT().QueueDelete(testGroupID, activePathOf("B")),
		gw.EXPECT().SubmitBatch(ctx, testGroupID).Return([]models.OperationResult{
			{ID: "1", Status: 204, Succeeded: true},
			{ID: "2", Status: 204, Succeeded: true},
		}, nil),
		list.EXPECT().Refresh(ctx).Return(nil).Times(1),
	)

	summary, err := svc.DeleteMany(ctx, selectedStudents("A", "B"))
	require.NoError(t, err)
	assert.Equal(t, models.DeleteSummary{Succeeded: 2}, summary)
}

func TestClientBatchDeleteService_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gw, list, ids := newTestBatchDeleteSvc(t, ctrl)
	ctx := context.Background()

	ids.EXPECT().BatchGroupID().Return(testGroupID)
	gw.EXPECT().QueueDelete(testGroupID, gomock.Any()).Times(3)
	gw.EXPECT().SubmitBatch(ctx, testGroupID).Return([]models.OperationResult{
		{ID: "1", Status: 204, Succeeded: true},
		{ID: "2", Status: 404, Succeeded: false},
		{ID: "3", Status: 204, Succeeded: true},
	}, nil)
	list.EXPECT().Refresh(ctx).Return(nil).Times(1)

	summary, err := svc.DeleteMany(ctx, selectedStudents("A", "B", "C"))
	require.Error(t, err)
	assert.Equal(t, models.DeleteSummary{Succeeded: 2, Failed: 1}, summary)
	assert.Equal(t, "1 delete operation(s) failed.", err.Error())

	var failure *Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, FailurePartialBatch, failure.Kind)
}

func TestClientBatchDeleteService_MissingResultsCountAsFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gw, list, ids := newTestBatchDeleteSvc(t, ctrl)
	ctx := context.Background()

	ids.EXPECT().BatchGroupID().Return(testGroupID)
	gw.EXPECT().QueueDelete(testGroupID, gomock.Any()).Times(3)
	gw.EXPECT().SubmitBatch(ctx, testGroupID).Return([]models.OperationResult{
		{ID: "1", Status: 204, Succeeded: true},
	}, nil)
	list.EXPECT().Refresh(ctx).Return(nil).Times(1)

	summary, err := svc.DeleteMany(ctx, selectedStudents("A", "B", "C"))
	require.Error(t, err)
	assert.Equal(t, models.DeleteSummary{Succeeded: 1, Failed: 2}, summary)
	assert.Equal(t, "2 delete operation(s) failed.", err.Error())
}

func TestClientBatchDeleteService_NothingSelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestBatchDeleteSvc(t, ctrl)

	summary, err := svc.DeleteMany(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNothingSelected)
	assert.Equal(t, "Select at least one student to delete.", err.Error())
	assert.Equal(t, models.DeleteSummary{}, summary)
}

func TestClientBatchDeleteService_SubmitFailsStillRefreshes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gw, list, ids := newTestBatchDeleteSvc(t, ctrl)
	ctx := context.Background()
	submitErr := errors.New("connection reset")

	ids.EXPECT().BatchGroupID().Return(testGroupID)
	gw.EXPECT().QueueDelete(testGroupID, activePathOf("A"))
	gw.EXPECT().SubmitBatch(ctx, testGroupID).Return(nil, submitErr)
	list.EXPECT().Refresh(ctx).Return(nil).Times(1)

	_, err := svc.DeleteMany(ctx, selectedStudents("A"))
	require.Error(t, err)
	assert.Equal(t, "Delete failed.", err.Error())
	assert.ErrorIs(t, err, submitErr)
}

func TestClientBatchDeleteService_RefreshErrorIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gw, list, ids := newTestBatchDeleteSvc(t, ctrl)
	ctx := context.Background()

	ids.EXPECT().BatchGroupID().Return(testGroupID)
	gw.EXPECT().QueueDelete(testGroupID, activePathOf("A"))
	gw.EXPECT().SubmitBatch(ctx, testGroupID).Return([]models.OperationResult{{ID: "1", Status: 204, Succeeded: true}}, nil)
	list.EXPECT().Refresh(ctx).Return(errors.New("offline"))

	summary, err := svc.DeleteMany(ctx, selectedStudents("A"))
	require.NoError(t, err)
	assert.Equal(t, models.DeleteSummary{Succeeded: 1}, summary)
}
