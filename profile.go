package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/profile returns the stored profile, or the seed profile when
// nothing has ever been saved.
func (a *App) getProfile(c *gin.Context) {
	profile := defaultProfile()
	a.store.Read(profileFile, &profile)
	c.JSON(http.StatusOK, profile)
}

// POST /api/profile replaces the profile wholesale. No merge: the admin
// editor always submits the complete record.
func (a *App) postProfile(c *gin.Context) {
	var profile Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	a.store.Write(profileFile, profile)
	result := a.github.Sync(c.Request.Context(), profileRepoPath, profile)
	if !result.Synced {
		log.Printf("GitHub sync failed for profile: %s", result.Error)
	}

	c.JSON(http.StatusOK, syncResponse(result, "profile", profile))
}
