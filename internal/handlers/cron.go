package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vetbridge/internal/models"
)

// ProcessReminders runs one sweep on demand. It shares the engine with the
// internal timer; the two may overlap safely.
func (h *Handler) ProcessReminders(c *gin.Context) {
	result, err := h.engine.Sweep(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        fmt.Sprintf("Processed %d reminders, sent %d emails", result.ProcessedCount, result.SentCount),
		"processedCount": result.ProcessedCount,
		"sentCount":      result.SentCount,
		"timestamp":      result.Timestamp.Format(time.RFC3339),
	})
}

// CronStatus is a read-only view of recent reminders split into pending and
// recently sent.
func (h *Handler) CronStatus(c *gin.Context) {
	recs, err := h.engine.RecentReminders(c.Request.Context(), 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "error",
			"error":     err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	var pending, sent []models.ReminderRecord
	for _, r := range recs {
		if r.Sent {
			if len(sent) < 5 {
				sent = append(sent, r)
			}
		} else {
			pending = append(pending, r)
		}
	}

	summary := func(r models.ReminderRecord) gin.H {
		item := gin.H{
			"id":                   r.ID.Hex(),
			"ownerContact":         r.OwnerEmail,
			"appointmentLocalDate": r.AppointmentDate,
			"appointmentLocalTime": r.AppointmentTime,
			"createdInstant":       r.CreatedAt,
		}
		if r.SentAt != nil {
			item["sentInstant"] = r.SentAt
		}
		return item
	}
	pendingViews := make([]gin.H, 0, len(pending))
	for _, r := range pending {
		pendingViews = append(pendingViews, summary(r))
	}
	sentViews := make([]gin.H, 0, len(sent))
	for _, r := range sent {
		sentViews = append(sentViews, summary(r))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"currentTime": time.Now().UTC().Format("2006-01-02 15:04:05") + " UTC",
		"cronJobStatus": gin.H{
			"endpoint":              "/api/cron/process-reminders",
			"lastCheck":             time.Now().UTC().Format(time.RFC3339),
			"pendingRemindersCount": len(pending),
			"recentSentCount":       len(sent),
		},
		"pendingReminders":    pendingViews,
		"recentSentReminders": sentViews,
	})
}

// DebugReminders exposes the full diagnostic projection with computed send
// windows.
func (h *Handler) DebugReminders(c *gin.Context) {
	statuses, err := h.engine.DescribeReminders(c.Request.Context(), 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"currentTimeUTC": time.Now().UTC().Format(time.RFC3339),
		"timezone":       "UTC",
		"totalReminders": len(statuses),
		"reminders":      statuses,
	})
}
