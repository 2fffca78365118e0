package main

import (
	"log"

	"github.com/shelfline/backend/config"
	"github.com/shelfline/backend/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration error: %v", err)
	}

	log.Println("Migrations applied")
}
