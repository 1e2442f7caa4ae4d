// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the Remote Document Gateway: transport-level access
// to a draft-enabled document service.
//
// The primary abstraction is [DocumentGateway], which decouples the client
// services from the underlying protocol. The package ships an HTTP
// implementation speaking OData-style JSON ([NewHTTPDocumentGateway]).
//
// Non-2xx responses are mapped by mapHTTPError to a [*ServiceError] wrapping
// one of the sentinel errors in errors.go, so callers can use [errors.Is] for
// the status class (e.g. [ErrNotFound] for 404) and [errors.As] to reach the
// structured messages of the service.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-draft-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/document_gateway_mock.go -package=mock

// DocumentGateway is the set of primitives the client services use against
// the remote document service. Paths are resource paths relative to the
// service root, as built by the odata package.
type DocumentGateway interface {
	// ReadByKey reads one header entity. Returns [ErrNotFound] (wrapped) when
	// the addressed representation does not exist.
	ReadByKey(ctx context.Context, path string) (models.Student, error)

	// ReadCollection reads the active instances of collection matching q.
	ReadCollection(ctx context.Context, collection string, q models.StudentQuery) ([]models.Student, error)

	// Create creates a new draft in collection from doc, including its
	// attachments, and returns the handle of the created draft.
	Create(ctx context.Context, collection string, doc models.Student) (models.DraftHandle, error)

	// UpdateField writes a single field of the entity addressed by handle.
	UpdateField(ctx context.Context, handle models.DraftHandle, field string, value any) error

	// ReadChildCollection reads the children of handle under relation. Each
	// entry carries the path addressing it.
	ReadChildCollection(ctx context.Context, handle models.DraftHandle, relation string) ([]models.AttachmentEntry, error)

	// DeleteEntity deletes the entity at path.
	DeleteEntity(ctx context.Context, path string) error

	// CreateChild creates one child of handle under relation.
	CreateChild(ctx context.Context, handle models.DraftHandle, relation string, child models.Attachment) error

	// InvokeAction invokes a bound action on the entity at path. The action
	// name is unqualified; the gateway applies its namespace.
	InvokeAction(ctx context.Context, path, action string, params map[string]any) error

	// QueueDelete enqueues a delete of path under groupID. Nothing is sent
	// until SubmitBatch.
	QueueDelete(groupID, path string)

	// SubmitBatch sends every operation queued under groupID as one request
	// and returns one normalised result per operation, in queue order. The
	// queue of groupID is emptied whatever the outcome.
	SubmitBatch(ctx context.Context, groupID string) ([]models.OperationResult, error)

	// ServiceRoot returns the absolute URL of the service root. Media links
	// announced by the service are relative to it.
	ServiceRoot() string
}
