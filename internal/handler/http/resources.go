// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-draft-keeper/internal/odata"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// resource parses the wildcard part of the request path and checks that it
// names the served entity set and navigation.
func (h *Handler) resource(r *http.Request) (odata.Resource, error) {
	path := chi.URLParam(r, "*")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(path)
		if err != nil {
			return odata.Resource{}, fmt.Errorf("%w: %w", odata.ErrInvalidPath, err)
		}
		path = unescaped
	}

	res, err := odata.ParsePath(path)
	if err != nil {
		return odata.Resource{}, err
	}
	if res.EntitySet != h.cfg.EntitySet {
		return odata.Resource{}, fmt.Errorf("%w: entity set %q", ErrUnknownResource, res.EntitySet)
	}
	if res.Navigation != "" && res.Navigation != odata.AttachmentsRelation {
		return odata.Resource{}, fmt.Errorf("%w: navigation %q", ErrUnknownResource, res.Navigation)
	}
	if res.Action != "" {
		if res.Namespace != "" && res.Namespace != h.cfg.ActionNamespace {
			return odata.Resource{}, fmt.Errorf("%w: action %s.%s", ErrUnknownResource, res.Namespace, res.Action)
		}
		if res.Action != odata.ActionEdit && res.Action != odata.ActionActivate {
			return odata.Resource{}, fmt.Errorf("%w: action %q", ErrUnknownResource, res.Action)
		}
	}
	return res, nil
}

func (h *Handler) read(w http.ResponseWriter, r *http.Request) {
	res, err := h.resource(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	switch {
	case res.IsCollection():
		h.listStudents(w, r)
	case res.IsEntity():
		h.getStudent(w, r, *res.Key)
	case res.IsChildCollection():
		h.listAttachments(w, r, *res.Key)
	case res.IsChild():
		h.getAttachment(w, r, *res.Key, res.ChildKey)
	case res.Media:
		h.getAttachmentContent(w, r, *res.Key, res.ChildKey)
	default:
		writeError(w, r, ErrUnsupportedOperation)
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	res, err := h.resource(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	switch {
	case res.IsCollection():
		h.createDraft(w, r)
	case res.IsChildCollection():
		h.createAttachment(w, r, *res.Key)
	case res.Action == odata.ActionEdit:
		h.editDraft(w, r, *res.Key)
	case res.Action == odata.ActionActivate:
		h.activateDraft(w, r, *res.Key)
	default:
		writeError(w, r, ErrUnsupportedOperation)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	res, err := h.resource(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !res.IsEntity() {
		writeError(w, r, ErrUnsupportedOperation)
		return
	}
	h.updateDraft(w, r, *res.Key)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	res, err := h.resource(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	switch {
	case res.IsEntity():
		h.deleteStudent(w, r, *res.Key)
	case res.IsChild():
		h.deleteAttachment(w, r, *res.Key, res.ChildKey)
	default:
		writeError(w, r, ErrUnsupportedOperation)
	}
}

// entityPath is the path of key relative to the service root, without the
// leading slash.
func (h *Handler) entityPath(key models.EntityKey) string {
	return strings.TrimPrefix(odata.EntityPath(h.cfg.EntitySet, key), "/")
}

func (h *Handler) location(relative string) string {
	return h.servicePathPrefix() + "/" + relative
}

func (h *Handler) servicePathPrefix() string {
	return strings.TrimRight(h.servicePath(), "/")
}
