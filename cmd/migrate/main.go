package main

import (
	"database/sql"
	"errors"
	"flag"
	"log"

	"github.com/bakehouse/api/internal/config"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// CLI flags
	direction := flag.String("direction", "up", "Migration direction: up or down")
	steps := flag.Int("steps", 0, "Number of migrations to apply (0 = all)")
	source := flag.String("source", "file://migrations", "Migration source URL")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Unable to ping database: %v", err)
	}
	log.Println("Connected to database")

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatalf("Failed to create migrate driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance(*source, "postgres", driver)
	if err != nil {
		log.Fatalf("Failed to load migrations: %v", err)
	}

	switch {
	case *direction == "up" && *steps > 0:
		err = m.Steps(*steps)
	case *direction == "up":
		err = m.Up()
	case *direction == "down" && *steps > 0:
		err = m.Steps(-*steps)
	case *direction == "down":
		err = m.Down()
	default:
		log.Fatalf("Unknown direction %q (want up or down)", *direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("Migration failed: %v", err)
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		log.Println("Migrations completed, no version applied")
	case err != nil:
		log.Fatalf("Failed to read version: %v", err)
	default:
		log.Printf("Migrations completed, version %d (dirty: %v)", version, dirty)
	}
}
