package db

import (
	"database/sql"
	"embed"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// SetupPostgres applies the embedded migrations. Any failure is fatal.
func SetupPostgres(pool *pgxpool.Pool, logger *zap.Logger) {
	if err := Migrate(pool); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	logger.Info("migrations applied successfully")
}

func Migrate(pool *pgxpool.Pool) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	var db *sql.DB = stdlib.OpenDBFromPool(pool)

	return goose.Up(db, "migrations")
}
