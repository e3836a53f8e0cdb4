package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileDefaultsWhenNothingStored(t *testing.T) {
	app, r, _ := newTestApp(t)

	w, resp := doJSON(t, r, app, http.MethodGet, "/api/profile", nil, false)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, defaultProfile().Title, resp["title"])
	assert.Equal(t, defaultProfile().Bio, resp["bio"])
}

func TestReplaceProfile(t *testing.T) {
	app, r, _ := newTestApp(t)

	updated := Profile{
		Title:    "Backend Engineer",
		Subtitle: "Distributed systems",
		Bio:      "Building things in Go.",
		Email:    "me@example.com",
	}
	w, resp := doJSON(t, r, app, http.MethodPost, "/api/profile", updated, true)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, true, resp["githubSynced"])
	assert.Equal(t, "Backend Engineer", resp["profile"].(map[string]any)["title"])

	// Subsequent reads see the replacement, not the seed
	_, got := doJSON(t, r, app, http.MethodGet, "/api/profile", nil, false)
	assert.Equal(t, "Backend Engineer", got["title"])
	assert.Equal(t, "Building things in Go.", got["bio"])
}

func TestReplaceProfileRequiresAuth(t *testing.T) {
	app, r, _ := newTestApp(t)

	w, _ := doJSON(t, r, app, http.MethodPost, "/api/profile", defaultProfile(), false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReplaceProfileSyncFailureReported(t *testing.T) {
	app, r, fake := newTestApp(t)
	fake.putStatus = http.StatusBadGateway

	w, resp := doJSON(t, r, app, http.MethodPost, "/api/profile", defaultProfile(), true)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, false, resp["githubSynced"])
	assert.NotEmpty(t, resp["githubError"])
}
