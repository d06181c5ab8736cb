// Command migrate applies the current schema to the configured database.
package main

import (
	"log"

	"github.com/Ladynads/creaverse/internal/config"
	"github.com/Ladynads/creaverse/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect runs AutoMigrate over the full model registry.
	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Schema is up to date")
}
