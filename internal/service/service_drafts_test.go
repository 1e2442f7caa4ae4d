// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/mock"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/internal/validators"
	"github.com/MKhiriev/go-draft-keeper/models"
)

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestDraftService(ctrl *gomock.Controller) (*draftService, *mock.MockStudentRepository) {
	repo := mock.NewMockStudentRepository(ctrl)
	svc := NewDraftService(repo, logger.Nop()).(*draftService)
	svc.now = func() time.Time { return testNow }
	return svc, repo
}

func activeKey(id string) models.EntityKey { return models.EntityKey{Id: id, IsActiveEntity: true} }
func draftKey(id string) models.EntityKey  { return models.EntityKey{Id: id} }

func TestDraftService_CreateDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestDraftService(ctrl)
	ctx := context.Background()

	in := annLee()
	in.IsActiveEntity = true
	in.Attachments = []models.Attachment{{AttachId: "ATT-001", Filename: "cv.pdf"}}

	stored := in
	stored.IsActiveEntity = false
	stamp := testNow
	stored.DraftLastChangedAt = &stamp

	gomock.InOrder(
		repo.EXPECT().GetStudent(ctx, activeKey(in.Id)).Return(models.Student{}, store.ErrNotFound),
		repo.EXPECT().CreateStudent(ctx, stored).Return(nil),
		repo.EXPECT().GetStudent(ctx, draftKey(in.Id)).Return(stored, nil),
	)

	got, err := svc.CreateDraft(ctx, in)
	require.NoError(t, err)
	assert.False(t, got.IsActiveEntity)
	assert.Equal(t, testNow, *got.DraftLastChangedAt)
}

func TestDraftService_CreateDraft_AssignsID(t *testing.T) {
	for _, id := range []string{"", "  "} {
		t.Run("id "+strconv.Quote(id), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestDraftService(ctrl)
			svc.newID = func() string { return "0123456789ABCDEF0123456789ABCDEF" }
			ctx := context.Background()

			in := annLee()
			in.Id = id

			stored := in
			stored.Id = "0123456789ABCDEF0123456789ABCDEF"
			stamp := testNow
			stored.DraftLastChangedAt = &stamp

			gomock.InOrder(
				repo.EXPECT().GetStudent(ctx, activeKey(stored.Id)).Return(models.Student{}, store.ErrNotFound),
				repo.EXPECT().CreateStudent(ctx, stored).Return(nil),
				repo.EXPECT().GetStudent(ctx, draftKey(stored.Id)).Return(stored, nil),
			)

			got, err := svc.CreateDraft(ctx, in)
			require.NoError(t, err)
			assert.Equal(t, stored.Id, got.Id)
		})
	}
}

func TestDraftService_CreateDraft_Conflicts(t *testing.T) {
	ctx := context.Background()

	t.Run("active exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestDraftService(ctrl)

		repo.EXPECT().GetStudent(ctx, activeKey("S1")).Return(models.Student{Id: "S1", IsActiveEntity: true}, nil)

		_, err := svc.CreateDraft(ctx, models.Student{Id: "S1"})
		assert.ErrorIs(t, err, ErrStudentExists)
	})

	t.Run("draft exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestDraftService(ctrl)

		repo.EXPECT().GetStudent(ctx, activeKey("S1")).Return(models.Student{}, store.ErrNotFound)
		repo.EXPECT().CreateStudent(ctx, gomock.Any()).Return(store.ErrAlreadyExists)

		_, err := svc.CreateDraft(ctx, models.Student{Id: "S1"})
		assert.ErrorIs(t, err, ErrStudentExists)
	})

	t.Run("lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestDraftService(ctrl)

		boom := errors.New("db down")
		repo.EXPECT().GetStudent(ctx, activeKey("S1")).Return(models.Student{}, boom)

		_, err := svc.CreateDraft(ctx, models.Student{Id: "S1"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestDraftService_UpdateDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestDraftService(ctrl)
	ctx := context.Background()

	fields := map[string]any{
		"Status":         false,
		"Age":            float64(30),
		"firstname":      "Bo",
		"@odata.etag":    "W/1",
		"IsActiveEntity": false,
		"Course":         "Bio",
	}

	want := []models.FieldValue{
		{Name: models.FieldFirstname, Value: "Bo"},
		{Name: models.FieldAge, Value: 30},
		{Name: models.FieldCourse, Value: "Bio"},
		{Name: models.FieldStatus, Value: false},
	}

	repo.EXPECT().UpdateStudent(ctx, draftKey("S1"), want, testNow).Return(nil)
	repo.EXPECT().GetStudent(ctx, draftKey("S1")).Return(models.Student{Id: "S1", Firstname: "Bo"}, nil)

	got, err := svc.UpdateDraft(ctx, draftKey("S1"), fields)
	require.NoError(t, err)
	assert.Equal(t, "Bo", got.Firstname)
}

func TestDraftService_UpdateDraft_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		key    models.EntityKey
		fields map[string]any
		want   error
	}{
		{name: "active key", key: activeKey("S1"), fields: map[string]any{"Age": 3}, want: ErrActiveReadOnly},
		{name: "unknown field", key: draftKey("S1"), fields: map[string]any{"Nickname": "x"}, want: ErrUnknownField},
		{name: "string for int", key: draftKey("S1"), fields: map[string]any{"Age": "thirty"}, want: ErrInvalidFieldValue},
		{name: "fractional int", key: draftKey("S1"), fields: map[string]any{"Age": 2.5}, want: ErrInvalidFieldValue},
		{name: "number for string", key: draftKey("S1"), fields: map[string]any{"Course": 7.0}, want: ErrInvalidFieldValue},
		{name: "string for bool", key: draftKey("S1"), fields: map[string]any{"Status": "true"}, want: ErrInvalidFieldValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestDraftService(ctrl)

			_, err := svc.UpdateDraft(ctx, tt.key, tt.fields)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("missing draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestDraftService(ctrl)

		repo.EXPECT().UpdateStudent(ctx, draftKey("S1"), gomock.Any(), testNow).Return(store.ErrNotFound)

		_, err := svc.UpdateDraft(ctx, draftKey("S1"), map[string]any{"Age": json.Number("4")})
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})
}

func TestDraftService_DeleteStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("active removes draft too", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestDraftService(ctrl)

		gomock.InOrder(
			repo.EXPECT().GetStudent(ctx, activeKey("S1")).Return(models.Student{Id: "S1", IsActiveEntity: true}, nil),
			repo.EXPECT().DeleteStudent(ctx, draftKey("S1")).Return(store.ErrNotFound),
			repo.EXPECT().DeleteStudent(ctx, activeKey("S1")).Return(nil),
		)

		require.NoError(t, svc.DeleteStudent(ctx, activeKey("S1")))
	})

	t.Run("missing active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestDraftService(ctrl)

		repo.EXPECT().GetStudent(ctx, activeKey("S1")).Return(models.Student{}, store.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteStudent(ctx, activeKey("S1")), ErrStudentNotFound)
	})

	t.Run("discard draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestDraftService(ctrl)

		repo.EXPECT().DeleteStudent(ctx, draftKey("S1")).Return(nil)

		require.NoError(t, svc.DeleteStudent(ctx, draftKey("S1")))
	})

	t.Run("missing draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestDraftService(ctrl)

		repo.EXPECT().DeleteStudent(ctx, draftKey("S1")).Return(store.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteStudent(ctx, draftKey("S1")), ErrStudentNotFound)
	})
}

func TestDraftService_EditDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("creates draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestDraftService(ctrl)

		gomock.InOrder(
			repo.EXPECT().GetStudent(ctx, activeKey("S1")).Return(models.Student{Id: "S1", IsActiveEntity: true}, nil),
			repo.EXPECT().EditStudent(ctx, "S1", testNow).Return(nil),
			repo.EXPECT().GetStudent(ctx, draftKey("S1")).Return(models.Student{Id: "S1"}, nil),
		)

		got, err := svc.EditDraft(ctx, "S1", true)
		require.NoError(t, err)
		assert.False(t, got.IsActiveEntity)
	})

	t.Run("replaces existing draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestDraftService(ctrl)

		repo.EXPECT().GetStudent(ctx, activeKey("S1")).Return(models.Student{Id: "S1", IsActiveEntity: true, HasDraftEntity: true}, nil)
		repo.EXPECT().EditStudent(ctx, "S1", testNow).Return(nil)
		repo.EXPECT().GetStudent(ctx, draftKey("S1")).Return(models.Student{Id: "S1"}, nil)

		_, err := svc.EditDraft(ctx, "S1", false)
		require.NoError(t, err)
	})

	t.Run("preserves existing draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestDraftService(ctrl)

		repo.EXPECT().GetStudent(ctx, activeKey("S1")).Return(models.Student{Id: "S1", IsActiveEntity: true, HasDraftEntity: true}, nil)

		_, err := svc.EditDraft(ctx, "S1", true)
		assert.ErrorIs(t, err, ErrDraftExists)
	})

	t.Run("no active student", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestDraftService(ctrl)

		repo.EXPECT().GetStudent(ctx, activeKey("S1")).Return(models.Student{}, store.ErrNotFound)

		_, err := svc.EditDraft(ctx, "S1", false)
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})
}

func TestDraftService_ActivateDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestDraftService(ctrl)

		repo.EXPECT().ActivateStudent(ctx, "S1").Return(nil)
		repo.EXPECT().GetStudent(ctx, activeKey("S1")).Return(models.Student{Id: "S1", IsActiveEntity: true}, nil)

		got, err := svc.ActivateDraft(ctx, "S1")
		require.NoError(t, err)
		assert.True(t, got.IsActiveEntity)
	})

	t.Run("no draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestDraftService(ctrl)

		repo.EXPECT().ActivateStudent(ctx, "S1").Return(store.ErrNotFound)

		_, err := svc.ActivateDraft(ctx, "S1")
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})
}

func TestDraftService_PurgeStaleDrafts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestDraftService(ctrl)
	ctx := context.Background()

	repo.EXPECT().PurgeDrafts(ctx, testNow.Add(-time.Hour)).Return([]string{"A", "B"}, nil)

	n, err := svc.PurgeStaleDrafts(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = svc.PurgeStaleDrafts(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestDraftService_ListStudents(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestDraftService(ctrl)
	ctx := context.Background()

	q := models.StudentQuery{Gender: "F"}
	repo.EXPECT().ListStudents(ctx, q).Return([]models.Student{annLee()}, nil)

	rows, err := svc.ListStudents(ctx, q)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestDraftValidationService_ActivateDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid draft is not activated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner, repo := newTestDraftService(ctrl)
		attachments := mock.NewMockAttachmentRepository(ctrl)
		svc := NewDraftValidationService(attachments).Wrap(inner)

		draft := annLee()
		draft.Age = 0
		repo.EXPECT().GetStudent(ctx, draftKey(draft.Id)).Return(draft, nil)
		attachments.EXPECT().ListAttachments(ctx, draftKey(draft.Id)).Return([]models.Attachment{{AttachId: "ATT-001"}}, nil)

		_, err := svc.ActivateDraft(ctx, draft.Id)

		var ve *validators.ValidationError
		require.True(t, errors.As(err, &ve))
		require.Len(t, ve.Messages, 2)
		assert.Equal(t, "Age", ve.Messages[0].Target)
		assert.Equal(t, "_Attachments(0)/Filename", ve.Messages[1].Target)
	})

	t.Run("valid draft is activated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner, repo := newTestDraftService(ctrl)
		attachments := mock.NewMockAttachmentRepository(ctrl)
		svc := NewDraftValidationService(attachments).Wrap(inner)

		draft := annLee()
		gomock.InOrder(
			repo.EXPECT().GetStudent(ctx, draftKey(draft.Id)).Return(draft, nil),
			repo.EXPECT().ActivateStudent(ctx, draft.Id).Return(nil),
			repo.EXPECT().GetStudent(ctx, activeKey(draft.Id)).Return(models.Student{Id: draft.Id, IsActiveEntity: true}, nil),
		)
		attachments.EXPECT().ListAttachments(ctx, draftKey(draft.Id)).Return(nil, nil)

		got, err := svc.ActivateDraft(ctx, draft.Id)
		require.NoError(t, err)
		assert.True(t, got.IsActiveEntity)
	})

	t.Run("missing draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner, repo := newTestDraftService(ctrl)
		svc := NewDraftValidationService(mock.NewMockAttachmentRepository(ctrl)).Wrap(inner)

		repo.EXPECT().GetStudent(ctx, draftKey("S1")).Return(models.Student{}, store.ErrNotFound)

		_, err := svc.ActivateDraft(ctx, "S1")
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run("pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner, repo := newTestDraftService(ctrl)
		svc := NewDraftValidationService(mock.NewMockAttachmentRepository(ctrl)).Wrap(inner)

		repo.EXPECT().DeleteStudent(ctx, draftKey("S1")).Return(nil)
		require.NoError(t, svc.DeleteStudent(ctx, draftKey("S1")))
	})
}
