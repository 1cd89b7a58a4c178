package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/checklint/internal/analysis"
)

func TestFilterScopeNoContext(t *testing.T) {
	findings := []analysis.Finding{
		{File: "a.go", Rule: "r1"},
		{File: "b.go", Rule: "r2"},
	}
	// nil set = no pull-request context = identity
	assert.Equal(t, findings, FilterScope(findings, nil))
}

func TestFilterScopeEmptySet(t *testing.T) {
	findings := []analysis.Finding{{File: "a.go"}}
	assert.Empty(t, FilterScope(findings, map[string]bool{}))
}

func TestFilterScopeSubset(t *testing.T) {
	findings := []analysis.Finding{
		{File: "a.go", Rule: "r1"},
		{File: "b.go", Rule: "r2"},
		{File: "a.go", Rule: "r3"},
		{File: "c.go", Rule: "r4"},
	}
	changed := ChangedFileSet([]string{"a.go", "c.go"})

	scoped := FilterScope(findings, changed)
	assert.Equal(t, []analysis.Finding{
		{File: "a.go", Rule: "r1"},
		{File: "a.go", Rule: "r3"},
		{File: "c.go", Rule: "r4"},
	}, scoped)
}

func TestFilterScopeAllFilesPresent(t *testing.T) {
	findings := []analysis.Finding{
		{File: "a.go"},
		{File: "b.go"},
	}
	changed := ChangedFileSet([]string{"a.go", "b.go"})
	assert.Equal(t, findings, FilterScope(findings, changed))
}
