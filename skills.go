package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/skills returns the stored skill groups, seeded on first run.
func (a *App) getSkills(c *gin.Context) {
	skills := defaultSkills()
	a.store.Read(skillsFile, &skills)
	c.JSON(http.StatusOK, skills)
}

// POST /api/skills replaces the full list of skill groups.
func (a *App) postSkills(c *gin.Context) {
	var skills []SkillGroup
	if err := c.ShouldBindJSON(&skills); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	a.store.Write(skillsFile, skills)
	result := a.github.Sync(c.Request.Context(), skillsRepoPath, skills)
	if !result.Synced {
		log.Printf("GitHub sync failed for skills: %s", result.Error)
	}

	c.JSON(http.StatusOK, syncResponse(result, "skills", skills))
}
