package report

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/checklint/internal/analysis"
	"github.com/dshills/checklint/internal/config"
)

// Build renders the check-run report body: the summary line, the run id, and
// the resolved configuration and active ruleset as fenced YAML in a fixed
// template.
func Build(runID string, cfg config.Config, rules *analysis.Ruleset, summary string) (string, error) {
	cfgYAML, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling configuration: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", summary)
	fmt.Fprintf(&b, "Run ID: `%s`\n\n", runID)
	b.WriteString("### Configuration\n\n")
	fmt.Fprintf(&b, "```yaml\n%s```\n\n", cfgYAML)
	b.WriteString("### Active ruleset\n\n")
	if rules == nil {
		b.WriteString("_default (no rules file)_\n")
	} else {
		rulesYAML, err := yaml.Marshal(rules)
		if err != nil {
			return "", fmt.Errorf("marshaling ruleset: %w", err)
		}
		fmt.Fprintf(&b, "```yaml\n%s```\n", rulesYAML)
	}
	return b.String(), nil
}
