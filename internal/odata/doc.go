// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package odata implements the small subset of the OData v4 conventions spoken
// between the client gateway and the document service: resource paths with key
// predicates, bound action segments, the live-filter $filter grammar, JSON batch
// responses and error envelopes.
//
// Both sides of the wire use this package so that a path built by the client is
// always understood by the service.
package odata
