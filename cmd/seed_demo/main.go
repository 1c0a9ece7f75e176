package main

import (
	"context"
	"fmt"
	"log"

	"github.com/doctrack-io/doctrackgo/internal/config"
	"github.com/doctrack-io/doctrackgo/internal/database"
	"github.com/doctrack-io/doctrackgo/internal/departments"
	"github.com/doctrack-io/doctrackgo/internal/models"
	"github.com/doctrack-io/doctrackgo/internal/utils"
	"github.com/doctrack-io/doctrackgo/internal/workflow"
)

func main() {
	fmt.Println("🌱 DocTrack Demo Data Seeder")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	fmt.Println("✅ Connected to database")

	fmt.Println("🔨 Running database migrations...")
	err = db.AutoMigrate(
		&models.UserAuth{},
		&models.Department{},
		&models.Document{},
		&models.DocumentMovement{},
		&models.ClientNotification{},
		&models.ActivityLog{},
	)
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	fmt.Println("✅ Migrations complete")

	ctx := context.Background()

	catalog := departments.NewCatalog(db.DB)
	if err := catalog.Seed(ctx); err != nil {
		log.Fatalf("❌ Department seed failed: %v", err)
	}
	fmt.Println("✅ Departments seeded")

	var userCount int64
	db.Model(&models.UserAuth{}).Count(&userCount)
	if userCount > 0 {
		fmt.Printf("⚠️  Database already has %d users. Aborting, nothing modified.\n", userCount)
		return
	}

	// Demo users, one per role that matters for the workflow
	hash, err := utils.HashPassword("demo1234")
	if err != nil {
		log.Fatalf("❌ Failed to hash demo password: %v", err)
	}
	users := []models.UserAuth{
		{Username: "admin", Email: "admin@example.com", Password: hash, Name: "Ada Admin", Role: models.RoleAdmin, Department: "Registry"},
		{Username: "clerk", Email: "clerk@example.com", Password: hash, Name: "Carl Clerk", Role: models.RoleClerk, Department: "Registry"},
		{Username: "client", Email: "client@example.com", Password: hash, Name: "Cleo Client", Role: models.RoleClient},
	}
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatalf("❌ Failed to create user %s: %v", users[i].Username, err)
		}
	}
	fmt.Println("✅ Users created (password: demo1234)")

	flow := workflow.NewService(db.DB, catalog)
	submitterID := users[2].ID

	// A document mid-route and one already at its destination
	doc1, err := flow.CreateDocument(ctx, workflow.CreateDocumentInput{
		Title:            "Vendor invoice Q3",
		DocType:          "Invoice",
		Department:       "Registry",
		FinalDestination: "Finance",
		SubmitterID:      &submitterID,
		UploadedBy:       users[1].ID,
	})
	if err != nil {
		log.Fatalf("❌ Failed to create document: %v", err)
	}
	if _, err := flow.Move(ctx, doc1.ID, "Transit", users[1].ID, "Dispatched with morning courier"); err != nil {
		log.Fatalf("❌ Failed to move document: %v", err)
	}

	doc2, err := flow.CreateDocument(ctx, workflow.CreateDocumentInput{
		Title:            "Employment contract draft",
		DocType:          "Contract",
		Department:       "Registry",
		FinalDestination: "Legal",
		SubmitterID:      &submitterID,
		UploadedBy:       users[1].ID,
	})
	if err != nil {
		log.Fatalf("❌ Failed to create document: %v", err)
	}
	if _, err := flow.Move(ctx, doc2.ID, "Legal", users[1].ID, "Hand delivered"); err != nil {
		log.Fatalf("❌ Failed to move document: %v", err)
	}

	fmt.Println("✅ Demo documents created:")
	fmt.Printf("   %s - %s (%s)\n", doc1.DocUniqueID, doc1.Title, models.StatusInMovement)
	fmt.Printf("   %s - %s (%s)\n", doc2.DocUniqueID, doc2.Title, models.StatusPendingApproval)
	fmt.Println("🌱 Done")
}
