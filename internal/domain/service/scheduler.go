// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "time"

// Scheduler defines the interface for deferred task execution. The lifecycle
// engine uses it to fire the automatic disbursement a fixed delay after
// delivery confirmation.
//
// Tasks are keyed by an identifier so implementations and tests can observe
// what was scheduled, but a scheduled task is not cancellable: if the record
// it targets disappears before the task fires, the task itself must cope
// (the engine re-reads by id and treats a missing record as a no-op).
type Scheduler interface {
	// Schedule runs task once after delay has elapsed.
	Schedule(id string, delay time.Duration, task func())
}
