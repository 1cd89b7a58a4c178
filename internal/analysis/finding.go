package analysis

// Severity is the analyzer-reported severity of a finding.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is a single raw static-analysis result as emitted by the external
// analyzer. Findings are never mutated after loading; rules packs return
// adjusted copies.
type Finding struct {
	File      string   `json:"file"`
	StartLine int      `json:"startLine"`
	EndLine   int      `json:"endLine"`
	Severity  Severity `json:"severity"`
	Rule      string   `json:"rule"`
	Message   string   `json:"message"`
	Title     string   `json:"title,omitempty"`
}
