package main

import (
	"database/sql"
	"log"
	"net/http"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	_ "modernc.org/sqlite"

	"github.com/gin-gonic/gin"
)

// App wires the handlers to their collaborators so tests can swap in a fake
// GitHub server or a temp data directory.
type App struct {
	cfg    *Config
	store  *FileStore
	github *GitHubClient
	db     *sql.DB

	adminToken  string
	hashingSalt string
}

func main() {
	cfg := loadConfig()

	db, err := sql.Open("sqlite", "portfolio.db")
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	app := &App{
		cfg:    cfg,
		store:  NewFileStore(cfg.DataDir, cfg.ReadOnlyFS),
		github: NewGitHubClient(cfg),
		db:     db,
	}
	app.initAdminToken()
	app.initVisitorTracking()

	r := gin.Default()
	app.setupRoutes(r)

	r.Run(":" + cfg.Port)
}

func (a *App) setupRoutes(r *gin.Engine) {
	r.Use(a.visitorTrackingMiddleware())

	r.Static("/static", "./static")
	r.GET("/", func(c *gin.Context) {
		c.File(filepath.Join("static", "index.html"))
	})

	// Public content reads
	r.GET("/api/projects", a.getProjects)
	r.GET("/api/profile", a.getProfile)
	r.GET("/api/skills", a.getSkills)

	r.POST("/api/contact", a.handleContact)

	r.POST("/admin/login", a.handleLogin)
	r.GET("/admin/logout", a.handleLogout)

	// Content mutations require an admin session
	authed := r.Group("/", a.adminAuthMiddleware())
	authed.POST("/api/projects", a.postProjects)
	authed.POST("/api/profile", a.postProfile)
	authed.POST("/api/skills", a.postSkills)
	authed.GET("/admin/api/stats", a.getAdminStats)
}

func (a *App) handleContact(c *gin.Context) {
	var form struct {
		FullName string `json:"fullName" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Message  string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := a.sendContactEmail(form.FullName, form.Email, form.Message); err != nil {
		log.Printf("Error sending contact email: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for your message! I'll get back to you soon.",
	})
}
