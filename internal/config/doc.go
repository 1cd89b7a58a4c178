// Package config loads and merges checklint configuration from the project's
// .checklint.yml, CHECKLINT_* environment variables, and CLI flag overrides,
// in that precedence order over built-in defaults.
package config
