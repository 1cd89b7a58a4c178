package trigger

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// RunContext identifies the repository, commit, and (when present) the pull
// request a run reports against. It is built once at the top of the run and
// passed down explicitly; nothing below the CLI reads the environment.
type RunContext struct {
	Owner            string
	Repo             string
	HeadSHA          string
	CheckName        string
	PRNumber         int // 0 when the run was not triggered by a pull request
	ChangedFileCount int
}

// IsPullRequest reports whether the run has pull-request context and should be
// scoped to the changed-file set.
func (rc RunContext) IsPullRequest() bool {
	return rc.PRNumber > 0
}

// Repository returns the owner/name form used in logs and reports.
func (rc RunContext) Repository() string {
	return rc.Owner + "/" + rc.Repo
}

// eventPayload is the subset of the GitHub event payload the run needs.
type eventPayload struct {
	PullRequest *struct {
		Number       int `json:"number"`
		ChangedFiles int `json:"changed_files"`
		Head         struct {
			SHA string `json:"sha"`
		} `json:"head"`
	} `json:"pull_request"`
}

// FromEnv builds the run context from the CI environment: GITHUB_REPOSITORY
// and GITHUB_SHA, plus the event payload at GITHUB_EVENT_PATH for pull-request
// metadata. Outside CI it falls back to the local git remote and HEAD.
func FromEnv(checkName string) (RunContext, error) {
	rc := RunContext{CheckName: checkName}

	if repo := os.Getenv("GITHUB_REPOSITORY"); repo != "" {
		parts := strings.SplitN(repo, "/", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return RunContext{}, fmt.Errorf("malformed GITHUB_REPOSITORY: %q", repo)
		}
		rc.Owner, rc.Repo = parts[0], parts[1]
	} else {
		owner, name, err := detectRepo()
		if err != nil {
			return RunContext{}, fmt.Errorf("no repository identity: set GITHUB_REPOSITORY or run inside a git checkout (%w)", err)
		}
		rc.Owner, rc.Repo = owner, name
	}

	rc.HeadSHA = os.Getenv("GITHUB_SHA")

	if path := os.Getenv("GITHUB_EVENT_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return RunContext{}, fmt.Errorf("reading event payload: %w", err)
		}
		var event eventPayload
		if err := json.Unmarshal(data, &event); err != nil {
			return RunContext{}, fmt.Errorf("parsing event payload: %w", err)
		}
		if event.PullRequest != nil {
			rc.PRNumber = event.PullRequest.Number
			rc.ChangedFileCount = event.PullRequest.ChangedFiles
			// For pull_request events GITHUB_SHA is the synthetic merge
			// commit; the check must attach to the branch head instead.
			if event.PullRequest.Head.SHA != "" {
				rc.HeadSHA = event.PullRequest.Head.SHA
			}
		}
	}

	if rc.HeadSHA == "" {
		sha, err := headSHA()
		if err != nil {
			return RunContext{}, fmt.Errorf("no commit to report against: set GITHUB_SHA or run inside a git checkout (%w)", err)
		}
		rc.HeadSHA = sha
	}

	return rc, nil
}

var (
	httpsRemoteRe = regexp.MustCompile(`https?://[^/]+/([^/]+)/([^/.\s]+)`)
	sshRemoteRe   = regexp.MustCompile(`[^@]+@[^:]+:([^/]+)/([^/.\s]+)`)
)

// detectRepo parses owner/repo from the git remote origin URL.
func detectRepo() (owner, repo string, err error) {
	out, err := exec.Command("git", "remote", "get-url", "origin").Output()
	if err != nil {
		return "", "", fmt.Errorf("git remote get-url origin: %w", err)
	}
	return ParseRemoteURL(strings.TrimSpace(string(out)))
}

// ParseRemoteURL extracts owner/repo from a git remote URL.
func ParseRemoteURL(url string) (owner, repo string, err error) {
	url = strings.TrimSuffix(url, ".git")

	if m := httpsRemoteRe.FindStringSubmatch(url); len(m) == 3 {
		return m[1], m[2], nil
	}
	if m := sshRemoteRe.FindStringSubmatch(url); len(m) == 3 {
		return m[1], m[2], nil
	}
	return "", "", fmt.Errorf("cannot parse owner/repo from remote URL: %s", url)
}

func headSHA() (string, error) {
	out, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse HEAD: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
