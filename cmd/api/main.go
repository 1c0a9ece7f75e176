package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/doctrack-io/doctrackgo/internal/audit"
	"github.com/doctrack-io/doctrackgo/internal/config"
	"github.com/doctrack-io/doctrackgo/internal/database"
	"github.com/doctrack-io/doctrackgo/internal/departments"
	"github.com/doctrack-io/doctrackgo/internal/handlers"
	"github.com/doctrack-io/doctrackgo/internal/middleware"
	"github.com/doctrack-io/doctrackgo/internal/models"
	"github.com/doctrack-io/doctrackgo/internal/notify"
	"github.com/doctrack-io/doctrackgo/internal/workflow"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize database (detects Embedded vs External automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	// Note: db.Close() is called manually in shutdown handler below

	// 3. Synchronize schema
	log.Println("🚀 Synchronizing database schema...")
	err = db.AutoMigrate(
		&models.UserAuth{},
		&models.Department{},
		&models.Document{},
		&models.DocumentMovement{},
		&models.ClientNotification{},
		&models.ActivityLog{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✅ Schema synchronized successfully")

	// 4. Seed the department catalog
	catalog := departments.NewCatalog(db.DB)
	if err := catalog.Seed(context.Background()); err != nil {
		log.Printf("⚠️ Department seed warning: %v", err)
	}

	// 5. Notification push hub
	hub := notify.NewHub()
	go hub.Run()

	// 6. Workflow service with post-commit collaborators
	flow := workflow.NewService(db.DB, catalog).
		WithAudit(audit.NewRecorder(db.DB)).
		WithPusher(hub)

	// 7. HTTP router
	router := handlers.NewRouter(db, cfg, flow, catalog, hub)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: middleware.CaseInsensitive(router),
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		log.Printf("🚀 Server starting on port %s\n", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sig := <-shutdown
	log.Printf("\n⚠️  Received signal: %v. Shutting down gracefully...\n", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Close database (this also stops embedded PostgreSQL)
	log.Println("🛑 Closing database connection...")
	if err := db.Close(); err != nil {
		log.Printf("Database close error: %v", err)
	}

	log.Println("✅ Shutdown complete")
}
