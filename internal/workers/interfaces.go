// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the document service.
//
// A [Worker] is started with a context and stopped by cancelling it; the
// [Workers] aggregate starts all configured workers and waits for them to
// return.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
