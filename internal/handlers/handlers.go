package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vetbridge/internal/config"
	"vetbridge/internal/services"
)

// HealthCheck reports whether the backing store is still reachable.
type HealthCheck func(ctx context.Context) error

// Handler carries the collaborators every endpoint needs. Everything is
// injected at construction; handlers hold no package-level state.
type Handler struct {
	cfg     *config.Config
	engine  *services.ReminderEngine
	mailer  services.Mailer
	pdf     *services.PDFService
	checkDB HealthCheck
}

func New(cfg *config.Config, engine *services.ReminderEngine, mailer services.Mailer, pdf *services.PDFService, checkDB HealthCheck) *Handler {
	return &Handler{
		cfg:     cfg,
		engine:  engine,
		mailer:  mailer,
		pdf:     pdf,
		checkDB: checkDB,
	}
}

// handleError provides a consistent way to handle and log errors
func handleError(c *gin.Context, status int, message string, err error) {
	log.Printf("Error: %v", err)
	c.JSON(status, gin.H{"error": message})
}

// Home handles requests to the root path "/"
func (h *Handler) Home(c *gin.Context) {
	h.Health(c)
}

// Health reports overall service health, including store connectivity.
func (h *Handler) Health(c *gin.Context) {
	dbStatus := "unknown"
	if h.checkDB != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.checkDB(ctx); err != nil {
			log.Printf("Error: health check: %v", err)
			dbStatus = "disconnected"
		} else {
			dbStatus = "connected"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "VetBridge email server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services": gin.H{
			"database": dbStatus,
			"email":    "ready",
		},
		"environment": gin.H{
			"env":  h.cfg.Env,
			"port": h.cfg.Port,
		},
	})
}

// Heartbeat is a minimal liveness probe with the server's notion of time.
func (h *Handler) Heartbeat(c *gin.Context) {
	now := time.Now().UTC()
	c.JSON(http.StatusOK, gin.H{
		"status":     "alive",
		"timestamp":  now.Format(time.RFC3339),
		"serverTime": now.Format("2006-01-02 15:04:05") + " UTC",
		"message":    "Server is running and healthy",
	})
}

// RequireCronSecret guards the cron/test/debug surface with a shared secret.
// When no secret is configured the middleware is a pass-through, matching
// local development.
func (h *Handler) RequireCronSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.cfg.CronSecret != "" && c.GetHeader("X-Cron-Secret") != h.cfg.CronSecret {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid cron secret"})
			c.Abort()
			return
		}
		c.Next()
	}
}
