// Package analysis defines the raw finding model and its sources.
//
// Findings arrive as a JSON array from a file, stdin, or the stdout of an
// analyzer command executed by checklint itself. Rules packs (rules.go) can
// disable rules by id and override severities before the findings enter the
// reporting pipeline.
package analysis
