package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFindings = `[
	{"file": "a.go", "startLine": 3, "endLine": 5, "severity": "error", "rule": "no-shadow", "message": "variable shadowed"},
	{"file": "b.go", "startLine": 7, "endLine": 7, "severity": "warning", "rule": "unused", "message": "x is unused"}
]`

func TestParse(t *testing.T) {
	findings, err := Parse([]byte(sampleFindings))
	require.NoError(t, err)
	require.Len(t, findings, 2)

	assert.Equal(t, Finding{
		File: "a.go", StartLine: 3, EndLine: 5,
		Severity: SeverityError, Rule: "no-shadow", Message: "variable shadowed",
	}, findings[0])
	assert.Equal(t, SeverityWarning, findings[1].Severity)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`{"not": "an array"}`))
	require.Error(t, err)
}

func TestParseEmptyArray(t *testing.T) {
	findings, err := Parse([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "findings.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleFindings), 0o644))

	findings, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, findings, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
