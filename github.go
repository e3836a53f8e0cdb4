package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Size ceilings for a synced document, tuned to the hosting platform's
// request body limit rather than GitHub's own 25MB cap. Checked before any
// network write so an oversized save fails fast.
const (
	maxJSONBytes    = 3 * 1024 * 1024
	maxEncodedBytes = 4 * 1024 * 1024
)

// GitHubClient pushes content documents to a repo via the Contents API so
// edits survive restarts on hosts without a writable disk.
type GitHubClient struct {
	Owner  string
	Repo   string
	Branch string
	Token  string

	// BaseURL without trailing slash; tests point this at a fake server.
	BaseURL string
	HTTP    *http.Client
}

// SyncResult reports one sync attempt. Error is human-readable and meant to
// be surfaced in the admin UI as-is.
type SyncResult struct {
	Synced bool
	Error  string
}

func NewGitHubClient(cfg *Config) *GitHubClient {
	return &GitHubClient{
		Owner:   cfg.GitHubOwner,
		Repo:    cfg.GitHubRepo,
		Branch:  cfg.GitHubBranch,
		Token:   cfg.GitHubToken,
		BaseURL: "https://api.github.com",
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

func failf(format string, args ...any) SyncResult {
	return SyncResult{Synced: false, Error: fmt.Sprintf(format, args...)}
}

// Sync commits doc as pretty-printed JSON to path on the configured branch.
// All failure modes come back as a result, never a panic or error return:
// the caller's local mutation has already happened and must be reported
// regardless of how the sync went.
//
// The write is conditional: the current blob sha is fetched immediately
// before the PUT and sent with it, so a concurrent edit shows up as a
// rejected write instead of being silently overwritten.
func (c *GitHubClient) Sync(ctx context.Context, path string, doc any) SyncResult {
	if c.Token == "" {
		return failf("GITHUB_TOKEN is missing in environment variables. " +
			"Set it in your deployment settings to enable content persistence.")
	}

	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.BaseURL, c.Owner, c.Repo, path)

	// 1. Fetch the current file sha, if the file exists yet.
	sha, res := c.fetchSHA(ctx, url)
	if res.Error != "" {
		return res
	}

	// 2. Encode and enforce the size ceilings.
	jsonBytes, err := marshalIndent(doc)
	if err != nil {
		return failf("encoding %s: %v", path, err)
	}
	if len(jsonBytes) > maxJSONBytes {
		return failf("Content is too large (%.2fMB). Reduce image sizes or remove some images. Maximum: %dMB.",
			float64(len(jsonBytes))/(1024*1024), maxJSONBytes/(1024*1024))
	}
	content := base64.StdEncoding.EncodeToString(jsonBytes)
	if len(content) > maxEncodedBytes {
		return failf("Content is too large after encoding (%.2fMB). Use fewer or smaller images.",
			float64(len(content))/(1024*1024))
	}

	// 3. Create or update, conditional on the fetched sha.
	payload := map[string]any{
		"message": "Update " + path + " via Admin Panel",
		"content": content,
		"branch":  c.Branch,
	}
	if sha != "" {
		payload["sha"] = sha
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return failf("encoding commit payload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return failf("building GitHub request: %v", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return failf("GitHub PUT failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errText, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return failf("GitHub PUT failed: %d %s", resp.StatusCode, errText)
	}

	log.Printf("GitHub sync successful for %s", path)
	return SyncResult{Synced: true}
}

// fetchSHA returns the blob sha of the existing file, or "" when the file
// does not exist yet. Any response other than 200 or 404 aborts the sync.
func (c *GitHubClient) fetchSHA(ctx context.Context, url string) (string, SyncResult) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url+"?ref="+c.Branch, nil)
	if err != nil {
		return "", failf("building GitHub request: %v", err)
	}
	c.setHeaders(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", failf("GitHub GET failed: %v", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var file struct {
			SHA string `json:"sha"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
			return "", failf("decoding GitHub file metadata: %v", err)
		}
		return file.SHA, SyncResult{}
	case resp.StatusCode == http.StatusNotFound:
		return "", SyncResult{}
	default:
		errText, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", failf("GitHub GET failed: %d %s", resp.StatusCode, errText)
	}
}

func (c *GitHubClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
}
