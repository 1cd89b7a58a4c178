// Package github provides a minimal GitHub REST API client for the checks API
// and the paginated pull-request file listing.
//
// Authentication comes from the GITHUB_TOKEN environment variable;
// GITHUB_API_URL overrides the endpoint for GitHub Enterprise. The client
// exposes create/update primitives only; ordering and lifecycle rules live in
// the checkrun package.
package github
