// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-draft-keeper/internal/odata"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
	"github.com/MKhiriev/go-draft-keeper/models"
)

const defaultMediaType = "application/octet-stream"

func (h *Handler) listAttachments(w http.ResponseWriter, r *http.Request, owner models.EntityKey) {
	attachments, err := h.services.AttachmentService.ListAttachments(r.Context(), owner)
	if err != nil {
		writeError(w, r, err)
		return
	}

	for i := range attachments {
		attachments[i] = h.withMediaLink(owner, attachments[i])
	}
	writeJSON(w, http.StatusOK, models.CollectionResponse[models.Attachment]{Value: attachments})
}

func (h *Handler) getAttachment(w http.ResponseWriter, r *http.Request, owner models.EntityKey, attachID string) {
	attachment, err := h.services.AttachmentService.GetAttachment(r.Context(), owner, attachID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.withMediaLink(owner, attachment))
}

func (h *Handler) getAttachmentContent(w http.ResponseWriter, r *http.Request, owner models.EntityKey, attachID string) {
	attachment, err := h.services.AttachmentService.GetAttachment(r.Context(), owner, attachID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if len(attachment.Content) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	etag := utils.ContentETag(attachment.Content)
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	mediaType := attachment.Mimetype
	if mediaType == "" {
		mediaType = defaultMediaType
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(attachment.Content)))
	if attachment.Filename != "" {
		w.Header().Set("Content-Disposition", "inline; filename="+strconv.Quote(attachment.Filename))
	}
	_, _ = utils.WriteRaw(w, attachment.Content, mediaType, http.StatusOK)
}

func (h *Handler) createAttachment(w http.ResponseWriter, r *http.Request, owner models.EntityKey) {
	var attachment models.Attachment
	if err := decodeJSON(r, &attachment, false); err != nil {
		writeError(w, r, err)
		return
	}
	attachment.MediaReadLink, attachment.MediaContentType = "", ""

	created, err := h.services.AttachmentService.CreateAttachment(r.Context(), owner, attachment)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", h.location(h.childPath(owner, created.AttachId)))
	writeJSON(w, http.StatusCreated, h.withMediaLink(owner, created))
}

func (h *Handler) deleteAttachment(w http.ResponseWriter, r *http.Request, owner models.EntityKey, attachID string) {
	if err := h.services.AttachmentService.DeleteAttachment(r.Context(), owner, attachID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) childPath(owner models.EntityKey, attachID string) string {
	return odata.ChildPath(h.entityPath(owner), odata.AttachmentsRelation, attachID)
}

// withMediaLink announces the content stream of a with a link relative to the
// service root. The content itself stays inline so a client can copy it.
func (h *Handler) withMediaLink(owner models.EntityKey, a models.Attachment) models.Attachment {
	if len(a.Content) == 0 {
		return a
	}

	a.MediaReadLink = strings.TrimPrefix(odata.MediaPath(h.childPath(owner, a.AttachId)), "/")
	a.MediaContentType = a.Mimetype
	if a.MediaContentType == "" {
		a.MediaContentType = defaultMediaType
	}
	return a
}
