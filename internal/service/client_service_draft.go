// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/odata"
	"github.com/MKhiriev/go-draft-keeper/models"
)

const (
	attachIDPrefix = "ATT-"
	attachIDFormat = attachIDPrefix + "%03d"
)

type clientDraftService struct {
	gateway    adapter.DocumentGateway
	reconciler ClientAttachmentReconciler
	ids        IDGenerator
	entitySet  string
	logger     *logger.Logger
}

func NewClientDraftService(gateway adapter.DocumentGateway, reconciler ClientAttachmentReconciler, ids IDGenerator, entitySet string, logger *logger.Logger) ClientDraftService {
	return &clientDraftService{
		gateway:    gateway,
		reconciler: reconciler,
		ids:        ids,
		entitySet:  entitySet,
		logger:     logger,
	}
}

func (d *clientDraftService) Save(ctx context.Context, buffer models.Student, state models.LifecycleState) (models.LifecycleState, models.SaveNotice, error) {
	snapshot := buffer.Clone()

	switch state.Kind {
	case models.NotPersisted:
		return d.saveNew(ctx, snapshot)
	case models.LocalDraftPending:
		return d.saveDraft(ctx, snapshot, state.Draft)
	case models.Active:
		return d.saveActive(ctx, snapshot)
	default:
		return state, models.NoticeNone, &Failure{
			Kind: FailureTransport,
			Text: fmt.Sprintf("cannot save document in state %s", state),
			Err:  ErrUnknownLifecycle,
		}
	}
}

// saveNew creates a draft from snapshot and activates it. A draft that was
// created but not activated is carried in the returned state so that the next
// save reuses it.
func (d *clientDraftService) saveNew(ctx context.Context, snapshot models.Student) (models.LifecycleState, models.SaveNotice, error) {
	log := d.logger.With().Str("func", "clientDraftService.saveNew").Str("id", snapshot.Id).Logger()

	handle, err := d.gateway.Create(ctx, d.entitySet, snapshot)
	if err != nil {
		log.Err(err).Msg("create draft failed")
		return models.StateNotPersisted(), models.NoticeNone, classifyFailure(fmt.Errorf("create draft: %w", err))
	}

	pending := models.StateLocalDraftPending(handle)
	if err = d.activate(ctx, handle.Path); err != nil {
		log.Err(err).Str("draft", handle.Path).Msg("activate new draft failed")
		return pending, models.NoticeNone, classifyFailure(err)
	}

	log.Debug().Msg("document created")
	return models.StateActive(), models.NoticeCreated, nil
}

// saveDraft writes snapshot into the draft created by an earlier failed save
// and activates it. A draft that no longer exists drops the state back to
// NotPersisted.
func (d *clientDraftService) saveDraft(ctx context.Context, snapshot models.Student, handle models.DraftHandle) (models.LifecycleState, models.SaveNotice, error) {
	log := d.logger.With().Str("func", "clientDraftService.saveDraft").Str("draft", handle.Path).Logger()

	pending := models.StateLocalDraftPending(handle)
	if handle.IsZero() {
		return pending, models.NoticeNone, &Failure{Kind: FailureTransport, Text: ErrMissingDraftHandle.Error(), Err: ErrMissingDraftHandle}
	}

	if err := d.writeDraft(ctx, snapshot, handle); err != nil {
		log.Err(err).Msg("write pending draft failed")
		// The draft is gone (discarded or purged): the next save creates it again.
		if errors.Is(err, adapter.ErrNotFound) {
			return models.StateNotPersisted(), models.NoticeNone, classifyFailure(err)
		}
		return pending, models.NoticeNone, classifyFailure(err)
	}

	log.Debug().Msg("pending draft activated")
	return models.StateActive(), models.NoticeCreated, nil
}

// saveActive edits an active document: it makes sure a draft exists, writes
// snapshot into it and activates it. The state stays Active on failure; the
// draft is looked up again on the next save.
func (d *clientDraftService) saveActive(ctx context.Context, snapshot models.Student) (models.LifecycleState, models.SaveNotice, error) {
	log := d.logger.With().Str("func", "clientDraftService.saveActive").Str("id", snapshot.Id).Logger()

	key := models.EntityKey{Id: snapshot.Id, IsActiveEntity: true}
	activePath := odata.EntityPath(d.entitySet, key)

	active, err := d.gateway.ReadByKey(ctx, activePath)
	if err != nil {
		log.Err(err).Msg("read active document failed")
		return models.StateActive(), models.NoticeNone, classifyFailure(fmt.Errorf("read active document: %w", err))
	}

	if !active.HasDraftEntity {
		params := map[string]any{odata.ParamPreserveChanges: false}
		if err = d.gateway.InvokeAction(ctx, activePath, odata.ActionEdit, params); err != nil {
			log.Err(err).Msg("edit action failed")
			return models.StateActive(), models.NoticeNone, classifyFailure(fmt.Errorf("create edit draft: %w", err))
		}
	}

	draftKey := key.Draft()
	handle := models.DraftHandle{Path: odata.EntityPath(d.entitySet, draftKey), Key: draftKey}
	if err = d.writeDraft(ctx, snapshot, handle); err != nil {
		log.Err(err).Str("draft", handle.Path).Msg("write edit draft failed")
		return models.StateActive(), models.NoticeNone, classifyFailure(err)
	}

	log.Debug().Msg("document updated")
	return models.StateActive(), models.NoticeUpdated, nil
}

// writeDraft re-reads the draft, writes every scalar field, replaces the
// attachments and activates the draft.
func (d *clientDraftService) writeDraft(ctx context.Context, snapshot models.Student, handle models.DraftHandle) error {
	if _, err := d.gateway.ReadByKey(ctx, handle.Path); err != nil {
		return fmt.Errorf("read draft: %w", err)
	}

	for _, field := range snapshot.ScalarFields() {
		if err := d.gateway.UpdateField(ctx, handle, field.Name, field.Value); err != nil {
			return fmt.Errorf("update field %s: %w", field.Name, err)
		}
	}

	report, err := d.reconciler.Reconcile(ctx, handle, snapshot.Attachments)
	if err != nil {
		return fmt.Errorf("reconcile attachments: %w", err)
	}
	if report.CleanupFailures > 0 {
		d.logger.Warn().
			Str("func", "clientDraftService.writeDraft").
			Str("draft", handle.Path).
			Int("cleanup_failures", report.CleanupFailures).
			Msg("some existing attachments could not be removed")
	}

	return d.activate(ctx, handle.Path)
}

func (d *clientDraftService) activate(ctx context.Context, draftPath string) error {
	if err := d.gateway.InvokeAction(ctx, draftPath, odata.ActionActivate, nil); err != nil {
		return fmt.Errorf("activate draft: %w", err)
	}
	return nil
}

func (d *clientDraftService) Load(ctx context.Context, id string) (models.Student, models.LifecycleState, error) {
	log := d.logger.With().Str("func", "clientDraftService.Load").Str("id", id).Logger()

	activePath := odata.EntityPath(d.entitySet, models.EntityKey{Id: id, IsActiveEntity: true})
	active, err := d.gateway.ReadByKey(ctx, activePath)
	if err != nil {
		if !errors.Is(err, adapter.ErrNotFound) {
			log.Err(err).Msg("read active document failed, starting blank")
		}
		return models.Student{Id: id}, models.StateNotPersisted(), nil
	}

	entries, err := d.gateway.ReadChildCollection(ctx, models.DraftHandle{Path: activePath}, odata.AttachmentsRelation)
	if err != nil {
		return models.Student{}, models.StateActive(), fmt.Errorf("read attachments of %s: %w", id, err)
	}

	active.Attachments = make([]models.Attachment, 0, len(entries))
	for _, entry := range entries {
		active.Attachments = append(active.Attachments, entry.Attachment)
	}

	log.Debug().Int("attachments", len(entries)).Msg("document loaded")
	return active, models.StateActive(), nil
}

func (d *clientDraftService) NewDocumentID() string {
	return d.ids.DocumentID()
}

// AddAttachment numbers the new row after the highest sequential AttachId in
// the buffer, so ids stay unique after rows were removed.
func (d *clientDraftService) AddAttachment(buffer *models.Student) models.Attachment {
	next := len(buffer.Attachments) + 1
	for _, att := range buffer.Attachments {
		digits, ok := strings.CutPrefix(att.AttachId, attachIDPrefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(digits); err == nil && n >= next {
			next = n + 1
		}
	}

	row := models.Attachment{AttachId: fmt.Sprintf(attachIDFormat, next)}
	buffer.Attachments = append(buffer.Attachments, row)
	return row
}

func (d *clientDraftService) RemoveAttachment(buffer *models.Student, index int) error {
	if index < 0 || index >= len(buffer.Attachments) {
		return fmt.Errorf("remove attachment %d of %d: %w", index, len(buffer.Attachments), ErrAttachmentIndexRange)
	}
	buffer.Attachments = append(buffer.Attachments[:index], buffer.Attachments[index+1:]...)
	return nil
}
