package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/pageza/recipes-api/backend/config"
	"github.com/pageza/recipes-api/backend/internal/database"
)

func main() {
	// Parse command line flags
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("DATABASE_URL is not set and configuration is invalid: %v", err)
		}
		dsn = cfg.DatabaseURL()
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if *rollback {
		name, err := database.Rollback(ctx, db)
		if errors.Is(err, database.ErrNoMigrations) {
			log.Println("No migrations to rollback")
			return
		}
		if err != nil {
			log.Fatalf("rollback failed: %v", err)
		}
		log.Printf("Rolled back migration: %s", name)
		return
	}

	applied, err := database.Apply(ctx, db)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if len(applied) == 0 {
		log.Println("Database is up to date")
		return
	}
	for _, name := range applied {
		log.Printf("Applied migration: %s", name)
	}
}
