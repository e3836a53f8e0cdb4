package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

// Config holds everything the app reads from the environment, resolved once
// at startup so handlers never reach for os.Getenv themselves.
type Config struct {
	Port    string
	DataDir string

	// ReadOnlyFS disables local writes entirely. Set READ_ONLY_FS=true on
	// hosts without a writable disk; VERCEL=1 implies it.
	ReadOnlyFS bool

	GitHubToken  string
	GitHubOwner  string
	GitHubRepo   string
	GitHubBranch string

	AdminUsername string
	AdminPassword string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	ToEmail  string
}

func loadConfig() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DataDir:       getEnv("DATA_DIR", "data"),
		ReadOnlyFS:    os.Getenv("READ_ONLY_FS") == "true" || os.Getenv("VERCEL") != "",
		GitHubToken:   os.Getenv("GITHUB_TOKEN"),
		GitHubOwner:   getEnv("GITHUB_REPO_OWNER", "CoderNjoro"),
		GitHubRepo:    getEnv("GITHUB_REPO_NAME", "Portfolio"),
		GitHubBranch:  getEnv("GITHUB_BRANCH", "main"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		ToEmail:       os.Getenv("TO_EMAIL"),
	}

	// Default credentials for development (remove in production)
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
		if gin.Mode() == gin.DebugMode {
			log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
		}
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
		if gin.Mode() == gin.DebugMode {
			log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
		}
	}

	if cfg.GitHubToken == "" {
		log.Println("WARNING: GITHUB_TOKEN not set. Content edits will only persist locally.")
	}
	if cfg.ReadOnlyFS {
		log.Println("Read-only filesystem mode: local writes disabled, GitHub sync is the durable store")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
