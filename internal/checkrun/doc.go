// Package checkrun implements the check-run lifecycle state machine.
//
// A run moves through NotCreated -> Created -> zero or more updates ->
// Finalized. The driver guarantees exactly one create call, one in-flight
// remote call at a time, and a terminal completed state even when a batch
// update fails partway through. Concurrency is eliminated structurally: the
// batch chain is a single ordered loop, not a worker pool, so no lock guards
// the run id or verdict.
package checkrun
