// Checklint publishes static-analysis findings as a GitHub check run.
//
// It ingests an analyzer's findings (JSON from a file, stdin, or by running
// the analyzer itself), scopes them to the files changed in the triggering
// pull request, and drives a check run through create, batched annotation
// updates, and exactly-once completion.
//
// Usage:
//
//	checklint run --findings findings.json   # publish findings for this commit
//	checklint run --dry-run                  # run the pipeline without publishing
//	checklint config init                    # write a default .checklint.yml
//
// See https://github.com/dshills/checklint for full documentation.
package main
