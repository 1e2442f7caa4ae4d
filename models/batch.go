// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// BatchRequest is the JSON batch body submitted to the document service.
type BatchRequest struct {
	Requests []BatchRequestPart `json:"requests"`
}

// BatchRequestPart is a single operation inside a [BatchRequest]. URL is
// relative to the service root.
type BatchRequestPart struct {
	ID             string            `json:"id"`
	AtomicityGroup string            `json:"atomicityGroup,omitempty"`
	Method         string            `json:"method"`
	URL            string            `json:"url"`
	Headers        map[string]string `json:"headers,omitempty"`
	Body           json.RawMessage   `json:"body,omitempty"`
}

// BatchResponse is the flat JSON batch response produced by the reference
// service. Other services may answer with a nested envelope; the adapter
// normalises both shapes into [OperationResult] values.
type BatchResponse struct {
	Responses []BatchResponsePart `json:"responses"`
}

// BatchResponsePart is the result of one operation inside a [BatchResponse].
type BatchResponsePart struct {
	ID      string            `json:"id"`
	Status  int               `json:"status"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    json.RawMessage   `json:"body,omitempty"`
}

// OperationResult is the normalised outcome of one batched operation.
type OperationResult struct {
	ID        string
	Status    int
	Succeeded bool
}

// DeleteSummary aggregates the outcome of a batch delete.
type DeleteSummary struct {
	Succeeded int
	Failed    int
}
