// Package annotate turns findings into check-run annotations.
//
// It projects findings into the checks API output schema with a fixed
// severity-to-level mapping, scopes them to the triggering pull request's
// changed files, partitions them into capacity-bounded batches, and computes
// the run verdict. Everything here is pure; network concerns live in the
// github and checkrun packages.
package annotate
