package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vetbridge/internal/models"
	"vetbridge/internal/services"
	"vetbridge/internal/store"
	"vetbridge/internal/templates"
)

// TriggerReminder force-dispatches one named record regardless of its
// eligibility window, then marks it sent. Manual-override path.
func (h *Handler) TriggerReminder(c *gin.Context) {
	var req models.TriggerReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "reminderId is required",
		})
		return
	}

	rec, err := h.engine.ForceDispatch(c.Request.Context(), req.ReminderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Reminder not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Test reminder sent successfully",
		"reminder": rec,
	})
}

// CreateTestAppointment stores a synthetic reminder ~15 minutes out for
// end-to-end testing of the sweep.
func (h *Handler) CreateTestAppointment(c *gin.Context) {
	id, rec, err := h.engine.CreateTestReminder(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Test appointment created",
		"reminderId": id,
		"reminder":   rec,
	})
}

// InternalCron runs the same sweep the internal timer runs, for exercising
// the schedule path by hand.
func (h *Handler) InternalCron(c *gin.Context) {
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
		"success":   true,
		"message":   "Internal cron executed successfully",
		"result":    result,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// TestEmail verifies the mail transport end to end.
func (h *Handler) TestEmail(c *gin.Context) {
	err := h.mailer.Send(c.Request.Context(), services.Email{
		ToEmail:   h.cfg.SupportEmail,
		ToName:    "VetBridge Support",
		Subject:   "Email System Test - VetBridge",
		PlainText: "This is a test email to verify the email system is working.",
		HTML:      "<h1>Test Email</h1><p>This is a test email to verify the email system is working.</p>",
	})
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to send test email", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Test email sent successfully!"})
}

// TestPDF renders a sample receipt and streams it back.
func (h *Handler) TestPDF(c *gin.Context) {
	html := templates.DonationReceiptHTML(
		"Test User", "25.00", "TEST_123", false, "Champion", "2025-07-01", "Credit Card")

	pdfBytes, err := h.pdf.RenderPDF(c.Request.Context(), html)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="test-receipt.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// TestCORSGet confirms the CORS configuration from a browser.
func (h *Handler) TestCORSGet(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "CORS test successful",
		"origin":    c.GetHeader("Origin"),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"method":    c.Request.Method,
	})
}

// TestCORSPost is the preflight-exercising variant; it echoes the body back.
func (h *Handler) TestCORSPost(c *gin.Context) {
	var body map[string]any
	_ = c.ShouldBindJSON(&body)

	c.JSON(http.StatusOK, gin.H{
		"message":   "CORS POST test successful",
		"origin":    c.GetHeader("Origin"),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"method":    c.Request.Method,
		"body":      body,
	})
}

// TestDonation echoes request diagnostics without sending anything.
func (h *Handler) TestDonation(c *gin.Context) {
	var body map[string]any
	_ = c.ShouldBindJSON(&body)

	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Test donation endpoint working!",
		"receivedData": gin.H{
			"hasBody":     len(body) > 0,
			"bodyKeys":    keys,
			"contentType": c.GetHeader("Content-Type"),
			"origin":      c.GetHeader("Origin"),
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
