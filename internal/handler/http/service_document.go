// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

const appVersionHeader = "X-App-Version"

func (h *Handler) serviceDocument(w http.ResponseWriter, r *http.Request) {
	info := h.services.InfoService

	w.Header().Set(appVersionHeader, info.GetAppVersion(r.Context()))
	writeJSON(w, http.StatusOK, info.ServiceDocument(r.Context()))
}
