package github

import (
	"context"
	"encoding/json"
	"fmt"
)

// FilesPerPage is the page size for the pull-request file listing, the API's
// maximum.
const FilesPerPage = 100

// PRFile represents a file changed in a pull request.
type PRFile struct {
	Filename string `json:"filename"`
}

// ChangedFiles returns every file path of the pull request. With a positive
// declaredTotal (from the event payload) it pages from page 0 while
// page*perPage is below the total; when the count is unknown (local --pr runs
// have no event payload) it pages until a short page instead, so an unknown
// count can never shrink the set. Results are concatenated, not deduplicated.
// Any page failure aborts: a partial set would silently mis-scope the report.
func (c *Client) ChangedFiles(ctx context.Context, owner, repo string, prNumber, declaredTotal int) ([]string, error) {
	var files []string
	for page := 0; ; page++ {
		if declaredTotal > 0 && page*FilesPerPage >= declaredTotal {
			break
		}
		names, err := c.changedFilesPage(ctx, owner, repo, prNumber, page, FilesPerPage)
		if err != nil {
			return nil, fmt.Errorf("listing changed files (page %d): %w", page, err)
		}
		files = append(files, names...)
		if declaredTotal <= 0 && len(names) < FilesPerPage {
			break
		}
	}
	return files, nil
}

func (c *Client) changedFilesPage(ctx context.Context, owner, repo string, prNumber, page, perPage int) ([]string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/pulls/%d/files?page=%d&per_page=%d",
		c.apiURL, owner, repo, prNumber, page, perPage)

	body, err := c.doJSON(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	var prFiles []PRFile
	if err := json.Unmarshal(body, &prFiles); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	names := make([]string, len(prFiles))
	for i, f := range prFiles {
		names[i] = f.Filename
	}
	return names, nil
}
