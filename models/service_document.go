// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ServiceDocument is the body served at the service root. It lists the
// entity sets a client may address.
type ServiceDocument struct {
	Context string                 `json:"@odata.context"`
	Value   []ServiceDocumentEntry `json:"value"`
}

// ServiceDocumentEntry names one entity set of the service.
type ServiceDocumentEntry struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	URL  string `json:"url"`
}
