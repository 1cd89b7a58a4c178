package annotate

import "fmt"

// Conclusion values the check run can terminate with.
const (
	ConclusionSuccess = "success"
	ConclusionFailure = "failure"
)

// Verdict is the aggregate pass/fail determination for a run. Immutable once
// computed.
type Verdict struct {
	ErrorCount   int
	WarningCount int
	Conclusion   string
	Summary      string
}

// ComputeVerdict counts failure- and warning-level annotations and derives the
// conclusion: failure if any errors, success otherwise.
func ComputeVerdict(anns []Annotation) Verdict {
	var v Verdict
	for _, a := range anns {
		switch a.Level {
		case LevelFailure:
			v.ErrorCount++
		case LevelWarning:
			v.WarningCount++
		}
	}
	v.Conclusion = ConclusionSuccess
	if v.ErrorCount > 0 {
		v.Conclusion = ConclusionFailure
	}
	v.Summary = fmt.Sprintf("%d error(s), %d warning(s) found", v.ErrorCount, v.WarningCount)
	return v
}
