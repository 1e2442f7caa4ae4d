// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package odata

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-draft-keeper/models"
)

// NormalizeBatchResponse flattens a batch response body into one
// [models.OperationResult] per leaf operation, in document order.
//
// Accepted shapes:
//   - {"$batch":[part, ...]} where each part carries "$changeset" (also the
//     misspelt "$changset") or "responses", or is itself a leaf;
//   - {"responses":[leaf, ...]};
//   - [leaf, ...].
//
// A leaf succeeded when its "success" flag is true; without a flag, when its
// status ("response.status" or "status") is below 400. A leaf with neither is
// counted as failed.
func NormalizeBatchResponse(body []byte) ([]models.OperationResult, error) {
	var root any
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBatchResponse, err)
	}

	var leaves []map[string]any

	switch v := root.(type) {
	case []any:
		leaves = collectLeaves(v)
	case map[string]any:
		if parts, ok := v["$batch"].([]any); ok {
			for _, p := range parts {
				part, ok := p.(map[string]any)
				if !ok {
					continue
				}
				if nested, ok := nestedOperations(part); ok {
					leaves = append(leaves, collectLeaves(nested)...)
					continue
				}
				leaves = append(leaves, part)
			}
			break
		}
		if nested, ok := nestedOperations(v); ok {
			leaves = collectLeaves(nested)
			break
		}
		return nil, fmt.Errorf("%w: no $batch or responses member", ErrInvalidBatchResponse)
	default:
		return nil, fmt.Errorf("%w: unexpected top-level %T", ErrInvalidBatchResponse, root)
	}

	results := make([]models.OperationResult, 0, len(leaves))
	for i, leaf := range leaves {
		results = append(results, classifyLeaf(leaf, i))
	}
	return results, nil
}

func nestedOperations(part map[string]any) ([]any, bool) {
	for _, member := range []string{"$changeset", "$changset", "responses"} {
		if ops, ok := part[member].([]any); ok {
			return ops, true
		}
	}
	return nil, false
}

func collectLeaves(items []any) []map[string]any {
	leaves := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if leaf, ok := item.(map[string]any); ok {
			leaves = append(leaves, leaf)
		}
	}
	return leaves
}

func classifyLeaf(leaf map[string]any, index int) models.OperationResult {
	result := models.OperationResult{ID: strconv.Itoa(index + 1)}
	if id, ok := leaf["id"].(string); ok && id != "" {
		result.ID = id
	}

	status, hasStatus := leafStatus(leaf)
	result.Status = status

	if success, ok := leaf["success"].(bool); ok {
		result.Succeeded = success
		return result
	}
	result.Succeeded = hasStatus && status < http.StatusBadRequest
	return result
}

func leafStatus(leaf map[string]any) (int, bool) {
	if resp, ok := leaf["response"].(map[string]any); ok {
		if s, ok := resp["status"].(float64); ok {
			return int(s), true
		}
	}
	if s, ok := leaf["status"].(float64); ok {
		return int(s), true
	}
	return 0, false
}

// DecodeErrorEnvelope decodes an OData error body. ok is false when body is not
// an error envelope.
func DecodeErrorEnvelope(body []byte) (models.ErrorEnvelope, bool) {
	var env models.ErrorEnvelope
	if len(body) == 0 {
		return env, false
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return env, false
	}
	if env.Error.Code == "" && env.Error.Message == "" && len(env.Messages()) == 0 {
		return env, false
	}
	return env, true
}
