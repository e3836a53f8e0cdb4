package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// fakeGitHub stands in for the Contents API. It counts calls so tests can
// assert which network steps ran.
type fakeGitHub struct {
	mu        sync.Mutex
	gets      int
	puts      int
	sha       string // blob sha returned on GET; "" means the file does not exist
	getStatus int    // non-zero forces the GET response status
	putStatus int    // non-zero forces the PUT response status
	lastPut   map[string]any
}

func (f *fakeGitHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		f.gets++
		if f.getStatus != 0 {
			http.Error(w, `{"message":"boom"}`, f.getStatus)
			return
		}
		if f.sha == "" {
			http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"sha": f.sha})
	case http.MethodPut:
		f.puts++
		f.lastPut = map[string]any{}
		json.NewDecoder(r.Body).Decode(&f.lastPut)
		if f.putStatus != 0 {
			http.Error(w, `{"message":"rejected"}`, f.putStatus)
			return
		}
		w.WriteHeader(http.StatusCreated)
	default:
		http.Error(w, "unexpected method", http.StatusMethodNotAllowed)
	}
}

func (f *fakeGitHub) counts() (gets, puts int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets, f.puts
}

func (f *fakeGitHub) last() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastPut
}

// newTestApp builds an App against a temp data dir, a throwaway sqlite file
// and the fake GitHub server, plus a router with all routes registered.
func newTestApp(t *testing.T) (*App, *gin.Engine, *fakeGitHub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fake := &fakeGitHub{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	db, err := sql.Open("sqlite", filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &Config{
		Port:          "8080",
		DataDir:       filepath.Join(dir, "data"),
		GitHubToken:   "test-token",
		GitHubOwner:   "CoderNjoro",
		GitHubRepo:    "Portfolio",
		GitHubBranch:  "main",
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}

	app := &App{
		cfg:   cfg,
		store: NewFileStore(cfg.DataDir, false),
		github: &GitHubClient{
			Owner:   cfg.GitHubOwner,
			Repo:    cfg.GitHubRepo,
			Branch:  cfg.GitHubBranch,
			Token:   cfg.GitHubToken,
			BaseURL: srv.URL,
			HTTP:    &http.Client{Timeout: 5 * time.Second},
		},
		db: db,
	}
	app.initAdminToken()
	app.initVisitorTracking()

	r := gin.New()
	app.setupRoutes(r)
	return app, r, fake
}

// doJSON performs a request with an optional admin session cookie and
// returns the recorder plus the decoded response body.
func doJSON(t *testing.T, r *gin.Engine, app *App, method, path string, body any, authed bool) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.AddCookie(&http.Cookie{Name: "admin_token", Value: app.adminToken})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := map[string]any{}
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestContactWithoutSMTPConfig(t *testing.T) {
	app, r, _ := newTestApp(t)

	w, resp := doJSON(t, r, app, http.MethodPost, "/api/contact", map[string]string{
		"fullName": "Jane Doe",
		"email":    "jane@example.com",
		"message":  "Hello!",
	}, false)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, false, resp["success"])
}

func TestContactRejectsBadPayload(t *testing.T) {
	app, r, _ := newTestApp(t)

	w, _ := doJSON(t, r, app, http.MethodPost, "/api/contact", map[string]string{
		"fullName": "Jane Doe",
		"email":    "not-an-email",
	}, false)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
