package annotate

import "github.com/dshills/checklint/internal/analysis"

// Level is the annotation_level the checks API accepts.
type Level string

const (
	LevelNotice  Level = "notice"
	LevelWarning Level = "warning"
	LevelFailure Level = "failure"
)

// LevelFor maps an analyzer severity to an annotation level. Severities the
// mapping does not know default to notice.
func LevelFor(s analysis.Severity) Level {
	switch s {
	case analysis.SeverityError:
		return LevelFailure
	case analysis.SeverityWarning:
		return LevelWarning
	default:
		return LevelNotice
	}
}

// Annotation is a finding projected into the checks API output schema.
type Annotation struct {
	Path      string `json:"path"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	Level     Level  `json:"annotation_level"`
	Message   string `json:"message"`
	Title     string `json:"title,omitempty"`
}

// Project converts findings into annotations in order, one per finding.
// Messages are scrubbed of secret-looking substrings before they leave the
// process; annotations land on a third-party service.
func Project(findings []analysis.Finding) []Annotation {
	if len(findings) == 0 {
		return nil
	}
	anns := make([]Annotation, len(findings))
	for i, f := range findings {
		end := f.EndLine
		if end == 0 {
			end = f.StartLine
		}
		title := f.Title
		if title == "" {
			title = f.Rule
		}
		anns[i] = Annotation{
			Path:      f.File,
			StartLine: f.StartLine,
			EndLine:   end,
			Level:     LevelFor(f.Severity),
			Message:   Scrub(f.Message),
			Title:     title,
		}
	}
	return anns
}
