// Command migrate applies the mirror database schema.
//
// Usage:
//
//	migrate
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"log"
	"os"

	"github.com/guidecr/placebot/internal/adapter/postgres"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	if err := postgres.Migrate(dsn); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	log.Println("migrations applied")
}
