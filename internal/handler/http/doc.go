// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the document service.
//
// All resources live below the configured service path and are addressed
// OData style: the entity set, entities by key predicate
// (Id='…',IsActiveEntity=…), the _Attachments navigation, the media stream of
// an attachment and the bound Edit and Activate actions. A JSON $batch
// endpoint dispatches its operations through the same router.
//
// Request tracing and access logging are handled by middleware in this
// package before requests reach the service layer. Errors are rendered as
// OData error envelopes.
package http
