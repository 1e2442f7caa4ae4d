// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle of the document service process.
type Server interface {
	// RunServer serves requests and runs the workers until SIGINT, SIGTERM
	// or SIGQUIT is received, then shuts both down.
	RunServer()

	// Shutdown stops the HTTP server, letting in-flight requests finish.
	Shutdown()
}
