package annotate

import "github.com/dshills/checklint/internal/analysis"

// FilterScope returns the findings whose file path is in the changed-file set.
// A nil set means the run has no pull-request context and every finding is in
// scope; an empty set scopes everything out.
func FilterScope(findings []analysis.Finding, changed map[string]bool) []analysis.Finding {
	if changed == nil {
		return findings
	}
	var scoped []analysis.Finding
	for _, f := range findings {
		if changed[f.File] {
			scoped = append(scoped, f)
		}
	}
	return scoped
}

// ChangedFileSet builds the membership set the filter consumes. Entries are
// taken as-is; the pull-request listing is trusted to be complete.
func ChangedFileSet(files []string) map[string]bool {
	set := make(map[string]bool, len(files))
	for _, f := range files {
		set[f] = true
	}
	return set
}
