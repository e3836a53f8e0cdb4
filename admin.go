// admin.go - Privacy-conscious admin session and visitor analytics
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// VisitorMetric is one tracked page view. IPs are stored hashed for privacy.
type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type AdminStats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}

// Initialize admin session token and IP hashing salt
func (a *App) initAdminToken() {
	a.adminToken = generateAdminToken()
	a.hashingSalt = generateAdminToken() // Use for IP hashing

	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", a.adminToken)
	}
}

func generateAdminToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(bytes)
}

// Hash IP address for privacy compliance (consistent per IP)
func (a *App) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// Middleware guarding content mutations and admin stats
func (a *App) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.adminToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// POST /admin/login
func (a *App) handleLogin(c *gin.Context) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if creds.Username == a.cfg.AdminUsername && creds.Password == a.cfg.AdminPassword {
		// Session cookie, 24 hours
		c.SetCookie("admin_token", a.adminToken, 3600*24, "/", "", false, true)
		log.Printf("Admin login successful from %s", a.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, gin.H{"success": true})
	} else {
		log.Printf("Failed admin login attempt from %s", a.hashIP(c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
	}
}

// GET /admin/logout
func (a *App) handleLogout(c *gin.Context) {
	c.SetCookie("admin_token", "", -1, "/", "", false, true)
	log.Printf("Admin logout from %s", a.hashIP(c.ClientIP()))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Privacy-conscious visitor tracking middleware
func (a *App) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip tracking for static files and admin traffic
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/admin/") ||
			strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		go a.trackVisitor(c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

func (a *App) trackVisitor(ip, userAgent, path string) {
	_, err := a.db.Exec(`
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, a.hashIP(ip), userAgent, path, time.Now())

	if err != nil {
		log.Printf("Error recording visitor: %v", err)
	}
}

// Initialize visitor tracking schema and privacy cleanup
func (a *App) initVisitorTracking() {
	createVisitorTable := `
	CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := a.db.Exec(createVisitorTable); err != nil {
		log.Fatal("Failed to create visitors table:", err)
	}

	// Clean up old visitor data for privacy compliance (run in background)
	go a.cleanupOldVisitorData()

	log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")
}

// Cleanup old visitor data for privacy compliance
func (a *App) cleanupOldVisitorData() {
	result, err := a.db.Exec(`
		DELETE FROM visitors
		WHERE timestamp < datetime('now', '-12 months')
	`)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}

	rowsDeleted, _ := result.RowsAffected()
	if rowsDeleted > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than 12 months", rowsDeleted)
	}
}

// GET /admin/api/stats
func (a *App) getAdminStats(c *gin.Context) {
	stats, err := a.collectAdminStats()
	if err != nil {
		log.Printf("Error loading admin stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (a *App) collectAdminStats() (*AdminStats, error) {
	stats := &AdminStats{}

	if err := a.db.QueryRow("SELECT COUNT(*) FROM visitors").Scan(&stats.TotalVisitors); err != nil {
		return nil, err
	}

	if err := a.db.QueryRow("SELECT COUNT(DISTINCT hashed_ip) FROM visitors").Scan(&stats.UniqueVisitors); err != nil {
		return nil, err
	}

	err := a.db.QueryRow(`
		SELECT COUNT(*) FROM visitors
		WHERE DATE(timestamp) = DATE('now')
	`).Scan(&stats.VisitorsToday)
	if err != nil {
		return nil, err
	}

	err = a.db.QueryRow(`
		SELECT COUNT(*) FROM visitors
		WHERE timestamp >= datetime('now', '-7 days')
	`).Scan(&stats.VisitorsThisWeek)
	if err != nil {
		return nil, err
	}

	rows, err := a.db.Query(`
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC
		LIMIT 50
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var visitor VisitorMetric
		if err := rows.Scan(&visitor.ID, &visitor.HashedIP, &visitor.UserAgent, &visitor.Path, &visitor.Timestamp); err != nil {
			continue
		}
		stats.RecentVisitors = append(stats.RecentVisitors, visitor)
	}

	return stats, nil
}
