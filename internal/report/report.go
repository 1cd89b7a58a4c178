package report

// Report summarizes one published run for local output. It mirrors what was
// sent to the remote check, not the analysis itself.
type Report struct {
	Tool           string `json:"tool"`
	Version        string `json:"version"`
	RunID          string `json:"runId"`
	Repository     string `json:"repository"`
	HeadSHA        string `json:"headSha"`
	PRNumber       int    `json:"prNumber,omitempty"`
	CheckName      string `json:"checkName"`
	TotalFindings  int    `json:"totalFindings"`
	ScopedFindings int    `json:"scopedFindings"`
	ErrorCount     int    `json:"errorCount"`
	WarningCount   int    `json:"warningCount"`
	Conclusion     string `json:"conclusion"`
	Summary        string `json:"summary"`
	Batches        int    `json:"batches"`
	DryRun         bool   `json:"dryRun,omitempty"`
}
