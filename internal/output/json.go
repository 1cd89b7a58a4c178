package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/checklint/internal/report"
)

// writeJSON emits the full run report as indented JSON, trailed by a newline
// so the output composes in shell pipelines.
func writeJSON(w io.Writer, rep *report.Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}
