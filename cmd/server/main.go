package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vetbridge/internal/config"
	"vetbridge/internal/database"
	"vetbridge/internal/handlers"
	"vetbridge/internal/services"
	"vetbridge/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			log.Printf("Error: mongo disconnect: %v", err)
		}
	}()

	reminders := store.NewReminders(db)
	mailer := services.NewSendGridMailer(cfg.SendGridAPIKey, cfg.FromEmail, cfg.FromName)
	pdf := services.NewPDFService(cfg.PDFTimeout)
	dispatcher := services.NewDispatcher(mailer)
	engine := services.NewReminderEngine(reminders, dispatcher)
	scheduler := services.NewScheduler(engine, cfg.SweepCron)
	h := handlers.New(cfg, engine, mailer, pdf, func(ctx context.Context) error {
		return database.Healthcheck(ctx, db)
	})

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.SetTrustedProxies([]string{"127.0.0.1"})
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Cron-Secret"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health and liveness
	router.GET("/", h.Home)
	router.GET("/health", h.Health)
	router.GET("/api/heartbeat", h.Heartbeat)

	// Transactional email endpoints
	router.POST("/sendWelcomeEmailParent", h.SendWelcomeEmail)
	router.POST("/sendBookingConfirmation", h.SendBookingConfirmation)
	router.POST("/sendRescheduleAppointmentConfirmation", h.SendRescheduleConfirmation)
	router.POST("/sendPaymentEmail", h.SendPaymentEmail)
	// Path spelling matches the deployed clients.
	router.POST("/sendRequestAccpetedEmail", h.SendRequestAcceptedEmail)
	router.POST("/sendDonationThankYou", h.SendDonationThankYou)
	router.POST("/sendHelpAskingMail", h.SendHelpRequest)
	router.POST("/sendHelpAskingReply", h.SendHelpReply)

	// Cron, debug and test surface (shared-secret guarded when configured)
	guarded := router.Group("", h.RequireCronSecret())
	{
		guarded.GET("/api/cron/process-reminders", h.ProcessReminders)
		guarded.GET("/api/cron/status", h.CronStatus)
		guarded.GET("/api/debug/reminders", h.DebugReminders)
		guarded.POST("/api/test/trigger-reminder", h.TriggerReminder)
		guarded.POST("/api/test/create-appointment", h.CreateTestAppointment)
		guarded.POST("/api/test/internal-cron", h.InternalCron)
	}
	router.GET("/test-cors", h.TestCORSGet)
	router.POST("/test-cors", h.TestCORSPost)
	router.GET("/test-email", h.TestEmail)
	router.POST("/test-pdf", h.TestPDF)
	router.POST("/test-donation", h.TestDonation)

	if err := scheduler.Start(); err != nil {
		log.Fatal("Failed to start scheduler:", err)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s...", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("Signal %s received. Shutting down gracefully...", sig)

	scheduler.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error: server shutdown: %v", err)
	}
	log.Println("Server closed")
}
