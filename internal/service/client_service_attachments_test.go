// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/mock"
	"github.com/MKhiriev/go-draft-keeper/internal/odata"
	"github.com/MKhiriev/go-draft-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReconciler(t *testing.T, ctrl *gomock.Controller) (ClientAttachmentReconciler, *mock.MockDocumentGateway) {
	t.Helper()
	gw := mock.NewMockDocumentGateway(ctrl)
	return NewClientAttachmentReconciler(gw, logger.Nop()), gw
}

func existingEntries(handle models.DraftHandle, ids ...string) []models.AttachmentEntry {
	out := make([]models.AttachmentEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.AttachmentEntry{
			Path:       odata.ChildPath(handle.Path, odata.AttachmentsRelation, id),
			Attachment: models.Attachment{AttachId: id},
		})
	}
	return out
}

func TestClientAttachmentReconciler_ReplacesAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec, gw := newTestReconciler(t, ctrl)
	ctx := context.Background()
	handle := draftHandleOf("DOC")
	entries := existingEntries(handle, "ATT-001", "ATT-002")

	desired := []models.Attachment{
		{
			AttachId:         "ATT-001",
			Comments:         "signed",
			Filename:         "cv.pdf",
			Mimetype:         "application/pdf",
			Content:          []byte("%PDF-1.7"),
			MediaReadLink:    "Students(...)/_Attachments('ATT-001')/Attachment",
			MediaContentType: "application/pdf",
			MediaURL:         "http://host/odata/v4/students/...",
		},
		{AttachId: "ATT-003", Filename: "notes.txt"},
	}

	gomock.InOrder(
		gw.EXPECT().ReadChildCollection(ctx, handle, odata.AttachmentsRelation).Return(entries, nil),
		gw.EXPECT().DeleteEntity(ctx, entries[0].Path).Return(nil),
		gw.EXPECT().DeleteEntity(ctx, entries[1].Path).Return(nil),
		gw.EXPECT().CreateChild(ctx, handle, odata.AttachmentsRelation, models.Attachment{
			AttachId: "ATT-001",
			Comments: "signed",
			Filename: "cv.pdf",
			Mimetype: "application/pdf",
			Content:  []byte("%PDF-1.7"),
		}).Return(nil),
		gw.EXPECT().CreateChild(ctx, handle, odata.AttachmentsRelation, models.Attachment{
			AttachId: "ATT-003",
			Filename: "notes.txt",
		}).Return(nil),
	)

	report, err := rec.Reconcile(ctx, handle, desired)
	require.NoError(t, err)
	assert.Equal(t, models.ReconcileReport{Deleted: 2, Created: 2}, report)
}

func TestClientAttachmentReconciler_EmptyDesiredClearsCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec, gw := newTestReconciler(t, ctrl)
	ctx := context.Background()
	handle := draftHandleOf("DOC")
	entries := existingEntries(handle, "ATT-001")

	gw.EXPECT().ReadChildCollection(ctx, handle, odata.AttachmentsRelation).Return(entries, nil)
	gw.EXPECT().DeleteEntity(ctx, entries[0].Path).Return(nil)

	report, err := rec.Reconcile(ctx, handle, nil)
	require.NoError(t, err)
	assert.Equal(t, models.ReconcileReport{Deleted: 1}, report)
}

func TestClientAttachmentReconciler_DeleteFailuresAreCounted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec, gw := newTestReconciler(t, ctrl)
	ctx := context.Background()
	handle := draftHandleOf("DOC")
	entries := existingEntries(handle, "ATT-001", "ATT-002", "ATT-003")

	gw.EXPECT().ReadChildCollection(ctx, handle, odata.AttachmentsRelation).Return(entries, nil)
	gw.EXPECT().DeleteEntity(ctx, entries[0].Path).Return(errors.New("locked"))
	gw.EXPECT().DeleteEntity(ctx, entries[1].Path).Return(nil)
	gw.EXPECT().DeleteEntity(ctx, entries[2].Path).Return(errors.New("locked"))
	gw.EXPECT().CreateChild(ctx, handle, odata.AttachmentsRelation, gomock.Any()).Return(nil)

	report, err := rec.Reconcile(ctx, handle, []models.Attachment{{AttachId: "ATT-004", Filename: "a.png"}})
	require.NoError(t, err)
	assert.Equal(t, models.ReconcileReport{Deleted: 1, CleanupFailures: 2, Created: 1}, report)
}

func TestClientAttachmentReconciler_CreateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec, gw := newTestReconciler(t, ctrl)
	ctx := context.Background()
	handle := draftHandleOf("DOC")

	gw.EXPECT().ReadChildCollection(ctx, handle, odata.AttachmentsRelation).Return(nil, nil)
	gw.EXPECT().CreateChild(ctx, handle, odata.AttachmentsRelation, gomock.Any()).Return(errors.New("payload too large"))

	_, err := rec.Reconcile(ctx, handle, []models.Attachment{{AttachId: "ATT-001"}, {AttachId: "ATT-002"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ATT-001")
	assert.Contains(t, err.Error(), "payload too large")
}

func TestClientAttachmentReconciler_ReadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec, gw := newTestReconciler(t, ctrl)
	ctx := context.Background()
	handle := draftHandleOf("DOC")

	gw.EXPECT().ReadChildCollection(ctx, handle, odata.AttachmentsRelation).Return(nil, errors.New("timeout"))

	_, err := rec.Reconcile(ctx, handle, nil)
	require.Error(t, err)
}

func TestClientAttachmentReconciler_RefusesActiveEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec, _ := newTestReconciler(t, ctrl)
	key := models.EntityKey{Id: "DOC", IsActiveEntity: true}
	active := models.DraftHandle{Path: odata.EntityPath(testEntitySet, key), Key: key}

	_, err := rec.Reconcile(context.Background(), active, nil)
	assert.ErrorIs(t, err, ErrNotADraft)

	_, err = rec.Reconcile(context.Background(), models.DraftHandle{}, nil)
	assert.ErrorIs(t, err, ErrNotADraft)
}
