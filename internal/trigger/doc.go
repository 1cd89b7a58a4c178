// Package trigger resolves the run's repository, commit, and pull-request
// identity from the CI environment, with a git fallback for local runs.
package trigger
