package analysis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Ruleset is a rules pack loaded from --rules. It disables rules by id and
// overrides finding severities before they are projected into the report.
type Ruleset struct {
	Disabled          []string            `yaml:"disabled,omitempty"`
	SeverityOverrides map[string]Severity `yaml:"severityOverrides,omitempty"`
}

// LoadRules loads a rules file from disk. Returns nil Ruleset and nil error if
// path is empty.
func LoadRules(path string) (*Ruleset, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	var rules Ruleset
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}
	return &rules, nil
}

// Apply drops findings for disabled rules and enforces severity overrides.
// A nil Ruleset returns the findings unchanged.
func (r *Ruleset) Apply(findings []Finding) []Finding {
	if r == nil || (len(r.Disabled) == 0 && len(r.SeverityOverrides) == 0) {
		return findings
	}

	disabled := make(map[string]bool, len(r.Disabled))
	for _, id := range r.Disabled {
		disabled[id] = true
	}

	result := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if disabled[f.Rule] {
			continue
		}
		if override, ok := r.SeverityOverrides[f.Rule]; ok {
			f.Severity = override
		}
		result = append(result, f)
	}
	return result
}
