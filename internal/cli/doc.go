// Package cli wires together the Cobra command tree for the checklint binary.
//
// It defines the root command and subcommands (run, config, version), binds
// flags, reads configuration, drives the reporting pipeline, and returns
// deterministic exit codes that mirror pipeline health rather than the
// analysis verdict.
package cli
