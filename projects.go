package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Remote paths the synced documents live at inside the content repo.
const (
	projectsRepoPath = "data/projects.json"
	profileRepoPath  = "data/profile.json"
	skillsRepoPath   = "data/skills.json"
)

type projectMutation struct {
	Action  string   `json:"action" binding:"required"`
	Project *Project `json:"project"`
	ID      string   `json:"id"`
}

func (a *App) loadProjects() []Project {
	projects := []Project{}
	a.store.Read(projectsFile, &projects)
	return projects
}

// GET /api/projects
func (a *App) getProjects(c *gin.Context) {
	c.JSON(http.StatusOK, a.loadProjects())
}

// POST /api/projects handles create, update and delete, then persists the
// whole list locally (best-effort) and to GitHub. The response always says
// whether the GitHub copy was updated; callers must warn on
// githubSynced=false because on a read-only host the local write is gone
// after the next restart.
func (a *App) postProjects(c *gin.Context) {
	var req projectMutation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	projects := a.loadProjects()

	switch req.Action {
	case "create":
		if req.Project == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing project payload"})
			return
		}
		if req.Project.ID == "" {
			req.Project.ID = uuid.NewString()
		}
		for _, p := range projects {
			if p.ID == req.Project.ID {
				c.JSON(http.StatusBadRequest, gin.H{
					"success": false,
					"error":   "Project ID already exists: " + req.Project.ID,
				})
				return
			}
		}
		if req.Project.CreatedAt == 0 {
			req.Project.CreatedAt = time.Now().UnixMilli()
		}
		// Newest first
		projects = append([]Project{*req.Project}, projects...)

	case "update":
		if req.Project == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing project payload"})
			return
		}
		idx := -1
		for i, p := range projects {
			if p.ID == req.Project.ID {
				idx = i
				break
			}
		}
		if idx == -1 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Project not found for update"})
			return
		}
		// createdAt never changes after creation, whatever the client sent
		req.Project.CreatedAt = projects[idx].CreatedAt
		projects[idx] = *req.Project

	case "delete":
		// Idempotent: deleting an id that is already gone is fine
		kept := projects[:0]
		for _, p := range projects {
			if p.ID != req.ID {
				kept = append(kept, p)
			}
		}
		projects = kept

	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid action: " + req.Action})
		return
	}

	a.store.Write(projectsFile, projects)
	result := a.github.Sync(c.Request.Context(), projectsRepoPath, projects)
	if !result.Synced {
		log.Printf("GitHub sync failed for projects: %s", result.Error)
	}

	c.JSON(http.StatusOK, syncResponse(result, "projects", projects))
}

// syncResponse builds the composite mutation result. success refers to the
// in-memory mutation, which already happened by the time this is called;
// the sync outcome rides alongside it.
func syncResponse(result SyncResult, key string, doc any) gin.H {
	resp := gin.H{
		"success":      true,
		"githubSynced": result.Synced,
		key:            doc,
	}
	if result.Error != "" {
		resp["githubError"] = result.Error
	}
	return resp
}
