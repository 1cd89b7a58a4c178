package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/checklint/internal/report"
)

// WriteReport writes the run report to outPath (stdout when empty) in the
// requested format.
func WriteReport(rep *report.Report, format, outPath string) error {
	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "text":
		return writeText(w, rep)
	case "json":
		return writeJSON(w, rep)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
