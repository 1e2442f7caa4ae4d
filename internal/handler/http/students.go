// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/odata"
	"github.com/MKhiriev/go-draft-keeper/models"
)

func (h *Handler) listStudents(w http.ResponseWriter, r *http.Request) {
	q, err := odata.ParseStudentFilter(r.URL.Query().Get("$filter"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	students, err := h.services.DraftService.ListStudents(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CollectionResponse[models.Student]{Value: students})
}

func (h *Handler) getStudent(w http.ResponseWriter, r *http.Request, key models.EntityKey) {
	student, err := h.services.DraftService.GetStudent(r.Context(), key)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, student)
}

func (h *Handler) createDraft(w http.ResponseWriter, r *http.Request) {
	var student models.Student
	if err := decodeJSON(r, &student, false); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.DraftService.CreateDraft(r.Context(), student)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("func", "*Handler.createDraft").Str("id", created.Id).Msg("draft created")

	w.Header().Set("Location", h.location(h.entityPath(models.EntityKey{Id: created.Id})))
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateDraft(w http.ResponseWriter, r *http.Request, key models.EntityKey) {
	fields := map[string]any{}
	if err := decodeJSON(r, &fields, false); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.DraftService.UpdateDraft(r.Context(), key, fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteStudent(w http.ResponseWriter, r *http.Request, key models.EntityKey) {
	if err := h.services.DraftService.DeleteStudent(r.Context(), key); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type editParams struct {
	PreserveChanges bool `json:"PreserveChanges"`
}

func (h *Handler) editDraft(w http.ResponseWriter, r *http.Request, key models.EntityKey) {
	if !key.IsActiveEntity {
		writeError(w, r, ErrActionKey)
		return
	}

	var params editParams
	if err := decodeJSON(r, &params, true); err != nil {
		writeError(w, r, err)
		return
	}

	draft, err := h.services.DraftService.EditDraft(r.Context(), key.Id, params.PreserveChanges)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, draft)
}

func (h *Handler) activateDraft(w http.ResponseWriter, r *http.Request, key models.EntityKey) {
	if key.IsActiveEntity {
		writeError(w, r, ErrActionKey)
		return
	}

	active, err := h.services.DraftService.ActivateDraft(r.Context(), key.Id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, active)
}
