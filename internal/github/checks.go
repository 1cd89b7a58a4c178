package github

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dshills/checklint/internal/annotate"
)

// Check-run statuses the client sends.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// CheckOutput is the output object of a check-run payload.
type CheckOutput struct {
	Title       string                `json:"title"`
	Summary     string                `json:"summary"`
	Text        string                `json:"text,omitempty"`
	Annotations []annotate.Annotation `json:"annotations,omitempty"`
}

// CheckRunParams is the request body for creating or updating a check run.
// Conclusion is only valid together with StatusCompleted.
type CheckRunParams struct {
	Name       string       `json:"name,omitempty"`
	HeadSHA    string       `json:"head_sha,omitempty"`
	Status     string       `json:"status"`
	Conclusion string       `json:"conclusion,omitempty"`
	Output     *CheckOutput `json:"output,omitempty"`
}

// CreateCheckRun creates a check run and returns its id. The id must be
// threaded through every subsequent update.
func (c *Client) CreateCheckRun(ctx context.Context, owner, repo string, params CheckRunParams) (int64, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/check-runs", c.apiURL, owner, repo)

	body, err := c.doJSON(ctx, "POST", url, params)
	if err != nil {
		return 0, fmt.Errorf("creating check run: %w", err)
	}

	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return 0, fmt.Errorf("parsing check run response: %w", err)
	}
	if created.ID == 0 {
		return 0, fmt.Errorf("check run response carried no id")
	}
	return created.ID, nil
}

// UpdateCheckRun applies one update to an existing check run.
func (c *Client) UpdateCheckRun(ctx context.Context, owner, repo string, id int64, params CheckRunParams) error {
	url := fmt.Sprintf("%s/repos/%s/%s/check-runs/%d", c.apiURL, owner, repo, id)

	if _, err := c.doJSON(ctx, "PATCH", url, params); err != nil {
		return fmt.Errorf("updating check run %d: %w", id, err)
	}
	return nil
}
