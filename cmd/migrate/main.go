package main

import (
	"database/sql"
	"errors"
	"os"
	"strconv"

	"hospital-portal/config"
	"hospital-portal/internal/infrastructure/database"
	"hospital-portal/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
)

// Usage:
//
//	migrate            apply every pending migration
//	migrate down       roll back the last migration
//	migrate force <v>  mark version v as applied without running it
func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		databaseURL = database.URL(cfg.DB)
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logrus.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.Fatalf("Failed to ping database: %v", err)
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		logrus.Fatalf("Failed to create database driver: %v", err)
	}

	srcDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		logrus.Fatalf("Failed to create source driver: %v", err)
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		logrus.Fatalf("Failed to create migrator: %v", err)
	}
	defer m.Close()

	switch {
	case len(os.Args) >= 3 && os.Args[1] == "force":
		version, err := strconv.Atoi(os.Args[2])
		if err != nil {
			logrus.Fatalf("Invalid version: %v", err)
		}
		if err := m.Force(version); err != nil {
			logrus.Fatalf("Failed to force version: %v", err)
		}
		logrus.Infof("Forced version to %d", version)
	case len(os.Args) >= 2 && os.Args[1] == "down":
		if err := m.Steps(-1); err != nil {
			logrus.Fatalf("Failed to roll back: %v", err)
		}
		logrus.Info("Rolled back one migration")
	default:
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			logrus.Fatalf("Failed to migrate: %v", err)
		}
		logrus.Info("Migrations complete")
	}
}
