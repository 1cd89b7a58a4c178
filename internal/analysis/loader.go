package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Load reads a findings list from a JSON file. Path "-" reads stdin.
func Load(path string) ([]Finding, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading findings: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON array of findings.
func Parse(data []byte) ([]Finding, error) {
	var findings []Finding
	if err := json.Unmarshal(data, &findings); err != nil {
		return nil, fmt.Errorf("parsing findings: %w", err)
	}
	return findings, nil
}

// Exec runs the analyzer command and parses its stdout as a findings array.
// A non-zero analyzer exit is tolerated as long as the output parses, since
// linters conventionally exit non-zero when they find issues.
func Exec(ctx context.Context, command string, args ...string) ([]Finding, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return nil, fmt.Errorf("running analyzer %s: %w", command, err)
		}
	}
	findings, err := Parse(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("analyzer %s: %w (stderr: %s)", command, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return findings, nil
}
