// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the document service: the HTTP server and the
// background workers, with signal handling and graceful shutdown of both.
package server
