// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/mock"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/models"
)

func newTestAttachmentService(ctrl *gomock.Controller) (*attachmentService, *mock.MockStudentRepository, *mock.MockAttachmentRepository) {
	students := mock.NewMockStudentRepository(ctrl)
	attachments := mock.NewMockAttachmentRepository(ctrl)
	svc := NewAttachmentService(students, attachments, logger.Nop()).(*attachmentService)
	svc.now = func() time.Time { return testNow }
	return svc, students, attachments
}

func TestAttachmentService_ListAttachments(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, students, attachments := newTestAttachmentService(ctrl)

		students.EXPECT().GetStudent(ctx, activeKey("S1")).Return(models.Student{Id: "S1"}, nil)
		attachments.EXPECT().ListAttachments(ctx, activeKey("S1")).Return([]models.Attachment{{AttachId: "ATT-001"}}, nil)

		got, err := svc.ListAttachments(ctx, activeKey("S1"))
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("unknown owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, students, _ := newTestAttachmentService(ctrl)

		students.EXPECT().GetStudent(ctx, draftKey("S1")).Return(models.Student{}, store.ErrNotFound)

		_, err := svc.ListAttachments(ctx, draftKey("S1"))
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})
}

func TestAttachmentService_GetAttachment(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, attachments := newTestAttachmentService(ctrl)
	ctx := context.Background()

	attachments.EXPECT().GetAttachment(ctx, draftKey("S1"), "ATT-404").Return(models.Attachment{}, store.ErrNotFound)
	_, err := svc.GetAttachment(ctx, draftKey("S1"), "ATT-404")
	assert.ErrorIs(t, err, ErrAttachmentNotFound)

	boom := errors.New("io")
	attachments.EXPECT().GetAttachment(ctx, draftKey("S1"), "ATT-001").Return(models.Attachment{}, boom)
	_, err = svc.GetAttachment(ctx, draftKey("S1"), "ATT-001")
	assert.ErrorIs(t, err, boom)
}

func TestAttachmentService_CreateAttachment(t *testing.T) {
	ctx := context.Background()
	a := models.Attachment{AttachId: "ATT-001", Filename: "cv.pdf", Content: []byte("x")}

	t.Run("success stamps the draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, students, attachments := newTestAttachmentService(ctrl)

		gomock.InOrder(
			students.EXPECT().GetStudent(ctx, draftKey("S1")).Return(models.Student{Id: "S1"}, nil),
			attachments.EXPECT().CreateAttachment(ctx, draftKey("S1"), a).Return(nil),
			students.EXPECT().UpdateStudent(ctx, draftKey("S1"), nil, testNow).Return(nil),
			attachments.EXPECT().GetAttachment(ctx, draftKey("S1"), "ATT-001").Return(a, nil),
		)

		got, err := svc.CreateAttachment(ctx, draftKey("S1"), a)
		require.NoError(t, err)
		assert.Equal(t, a, got)
	})

	t.Run("active owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := newTestAttachmentService(ctrl)

		_, err := svc.CreateAttachment(ctx, activeKey("S1"), a)
		assert.ErrorIs(t, err, ErrActiveReadOnly)
	})

	t.Run("missing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := newTestAttachmentService(ctrl)

		_, err := svc.CreateAttachment(ctx, draftKey("S1"), models.Attachment{Filename: "x"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, students, attachments := newTestAttachmentService(ctrl)

		students.EXPECT().GetStudent(ctx, draftKey("S1")).Return(models.Student{Id: "S1"}, nil)
		attachments.EXPECT().CreateAttachment(ctx, draftKey("S1"), a).Return(store.ErrAlreadyExists)

		_, err := svc.CreateAttachment(ctx, draftKey("S1"), a)
		assert.ErrorIs(t, err, ErrAttachmentExists)
	})
}

func TestAttachmentService_DeleteAttachment(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, students, attachments := newTestAttachmentService(ctrl)

		attachments.EXPECT().DeleteAttachment(ctx, draftKey("S1"), "ATT-001").Return(nil)
		students.EXPECT().UpdateStudent(ctx, draftKey("S1"), nil, testNow).Return(errors.New("ignored"))

		require.NoError(t, svc.DeleteAttachment(ctx, draftKey("S1"), "ATT-001"))
	})

	t.Run("active owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := newTestAttachmentService(ctrl)

		assert.ErrorIs(t, svc.DeleteAttachment(ctx, activeKey("S1"), "ATT-001"), ErrActiveReadOnly)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, attachments := newTestAttachmentService(ctrl)

		attachments.EXPECT().DeleteAttachment(ctx, draftKey("S1"), "ATT-404").Return(store.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteAttachment(ctx, draftKey("S1"), "ATT-404"), ErrAttachmentNotFound)
	})
}
