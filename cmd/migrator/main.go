package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, or status")
		dir     = flag.String("dir", "db/migrations", "Directory containing migration files")
	)
	flag.Parse()

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	pgHost := getEnv("PG_HOST", "localhost")
	pgPort := getEnv("PG_PORT", "5432")
	pgUser := getEnv("PG_USER", "")
	pgPassword := getEnv("PG_PASSWORD", "")
	pgDatabase := getEnv("PG_DATABASE", "")
	pgSSLMode := getEnv("PG_SSL_MODE", "disable")

	for name, val := range map[string]string{"PG_USER": pgUser, "PG_PASSWORD": pgPassword, "PG_DATABASE": pgDatabase} {
		if val == "" {
			log.Fatal().Str("var", name).Msg("required environment variable is not set")
		}
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		pgHost, pgPort, pgUser, pgPassword, pgDatabase, pgSSLMode)

	migrationDir, err := filepath.Abs(*dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", *dir).Msg("failed to resolve migration directory")
	}
	if _, err := os.Stat(migrationDir); os.IsNotExist(err) {
		log.Fatal().Str("dir", migrationDir).Msg("migration directory does not exist")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database connection")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}

	log.Info().
		Str("host", pgHost).
		Str("database", pgDatabase).
		Str("migration_dir", migrationDir).
		Msg("connected to database")

	goose.SetTableName("goose_db_version")

	switch *command {
	case "up":
		if err := goose.Up(db, migrationDir); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations up")
		}
		log.Info().Msg("migrations applied successfully")
	case "down":
		if err := goose.Down(db, migrationDir); err != nil {
			log.Fatal().Err(err).Msg("failed to roll back migration")
		}
		log.Info().Msg("migration rolled back successfully")
	case "status":
		if err := goose.Status(db, migrationDir); err != nil {
			log.Fatal().Err(err).Msg("failed to get migration status")
		}
	default:
		log.Fatal().Str("command", *command).Msg("unknown command. Use: up, down, or status")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
