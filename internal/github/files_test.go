package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChangedFilesPaginates(t *testing.T) {
	var pages []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/owner/repo/pulls/42/files" {
			t.Errorf("Path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("per_page") != "100" {
			t.Errorf("per_page = %q, want 100", r.URL.Query().Get("per_page"))
		}
		page := r.URL.Query().Get("page")
		pages = append(pages, page)

		count := 100
		if page == "2" {
			count = 50
		}
		files := make([]PRFile, count)
		for i := range files {
			files[i] = PRFile{Filename: fmt.Sprintf("p%s-f%d.go", page, i)}
		}
		json.NewEncoder(w).Encode(files)
	}))
	defer server.Close()

	c := &Client{token: "test-token", apiURL: server.URL, httpCli: server.Client()}

	// declaredTotal 250 at 100/page means exactly pages 0, 1, 2.
	files, err := c.ChangedFiles(context.Background(), "owner", "repo", 42, 250)
	if err != nil {
		t.Fatalf("ChangedFiles error: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("page requests = %v, want 3", pages)
	}
	if pages[0] != "0" || pages[1] != "1" || pages[2] != "2" {
		t.Errorf("pages = %v, want [0 1 2]", pages)
	}
	// Entries are concatenated, not deduplicated.
	if len(files) != 250 {
		t.Errorf("files count = %d, want 250", len(files))
	}
	if files[0] != "p0-f0.go" || files[100] != "p1-f0.go" || files[249] != "p2-f49.go" {
		t.Errorf("unexpected page ordering: %q %q %q", files[0], files[100], files[249])
	}
}

func TestChangedFilesUnknownTotal(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		count := 100
		if r.URL.Query().Get("page") == "1" {
			count = 30
		}
		files := make([]PRFile, count)
		for i := range files {
			files[i] = PRFile{Filename: fmt.Sprintf("p%s-f%d.go", r.URL.Query().Get("page"), i)}
		}
		json.NewEncoder(w).Encode(files)
	}))
	defer server.Close()

	c := &Client{token: "test-token", apiURL: server.URL, httpCli: server.Client()}

	// No declared count (local --pr runs have no event payload): page until a
	// short page rather than skipping the listing entirely.
	files, err := c.ChangedFiles(context.Background(), "owner", "repo", 42, 0)
	if err != nil {
		t.Fatalf("ChangedFiles error: %v", err)
	}
	if requests != 2 {
		t.Errorf("requests = %d, want 2", requests)
	}
	if len(files) != 130 {
		t.Errorf("files count = %d, want 130", len(files))
	}
}

func TestChangedFilesUnknownTotalSmallPR(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		json.NewEncoder(w).Encode([]PRFile{{Filename: "main.go"}})
	}))
	defer server.Close()

	c := &Client{token: "test-token", apiURL: server.URL, httpCli: server.Client()}

	// A one-file PR with an unknown count must still yield its file; an empty
	// set here would scope every finding out of the report.
	files, err := c.ChangedFiles(context.Background(), "owner", "repo", 7, 0)
	if err != nil {
		t.Fatalf("ChangedFiles error: %v", err)
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1", requests)
	}
	if len(files) != 1 || files[0] != "main.go" {
		t.Errorf("files = %v, want [main.go]", files)
	}
}

func TestChangedFilesPageFailureIsFatal(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Query().Get("page") == "1" {
			w.WriteHeader(500)
			w.Write([]byte(`{"message":"boom"}`))
			return
		}
		files := make([]PRFile, 100)
		json.NewEncoder(w).Encode(files)
	}))
	defer server.Close()

	c := &Client{token: "test-token", apiURL: server.URL, httpCli: server.Client()}

	// A partial changed-file set would mis-scope the report, so any page
	// failure aborts.
	_, err := c.ChangedFiles(context.Background(), "owner", "repo", 42, 250)
	if err == nil {
		t.Fatal("Expected error from failing page")
	}
	if requests != 2 {
		t.Errorf("requests = %d, want 2 (no pages after the failure)", requests)
	}
}
