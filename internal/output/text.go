package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/checklint/internal/report"
)

// writeText emits a human-readable run summary.
func writeText(w io.Writer, rep *report.Report) error {
	ew := &errWriter{w: w}

	ew.printf("checklint — check run report\n")
	ew.printf("Repository: %s @ %s\n", rep.Repository, shortSHA(rep.HeadSHA))
	if rep.PRNumber > 0 {
		ew.printf("Pull request: #%d\n", rep.PRNumber)
	}
	ew.println(strings.Repeat("─", 60))
	ew.printf("Check: %s\n", rep.CheckName)
	ew.printf("Findings: %d total, %d in scope\n", rep.TotalFindings, rep.ScopedFindings)
	ew.printf("Result: %s (%s)\n", rep.Conclusion, rep.Summary)
	if rep.Batches > 0 {
		ew.printf("Annotations sent in %d batch(es)\n", rep.Batches)
	}
	if rep.DryRun {
		ew.println("Dry run: nothing was published.")
	}
	ew.println(strings.Repeat("─", 60))

	return ew.err
}

func shortSHA(sha string) string {
	if len(sha) > 12 {
		return sha[:12]
	}
	return sha
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
