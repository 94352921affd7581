package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"youthhub/internal/config"
	"youthhub/internal/db"
	"youthhub/internal/email"
	"youthhub/internal/jobs"
	"youthhub/internal/metrics"
	"youthhub/internal/server"
	"youthhub/internal/workflow"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Static site config (centers, categories)
	site, err := config.LoadSiteConfig()
	if err != nil {
		log.Fatalf("Failed to load site config: %v", err)
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Register Prometheus collectors
	metrics.Init(database)

	// Email notifications
	emailService := email.NewService(cfg)
	notifier := email.NewNotifier(emailService, database, cfg)

	// Supervision workflow coordinator. The database serves as idea and
	// request store, supervisor directory, and transaction runner.
	coordinator := workflow.New(database.Ideas(), database.Requests(), database, notifier, database)

	// HTTP server
	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, database, coordinator, site); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Background reminder job for stale pending requests
	jobCtx, cancelJobs := context.WithCancel(ctx)
	defer cancelJobs()
	if cfg.ReminderEnabled && emailService.IsEnabled() {
		reminder := jobs.NewReminder(database, notifier, cfg.ReminderInterval, cfg.ReminderMaxAge)
		go reminder.Start(jobCtx)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancelJobs()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
