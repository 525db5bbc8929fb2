package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/mohammadpnp/email-blast/internal/infrastructure/db/migrations"
	"github.com/pressly/goose/v3"
)

const migrationTable = "schema_migrations"

var ErrApplyMigrations = errors.New("failed to apply migrations")

// Migrate applies the embedded migrations through a database/sql view of the pool.
// The returned *sql.DB shares the pool's connections, so it is not closed here.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	sqlDB := stdlib.OpenDBFromPool(pool)

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(gooseLogger{})
	goose.SetTableName(migrationTable)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%w: %v", ErrApplyMigrations, err)
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("%w: %v", ErrApplyMigrations, err)
	}
	return nil
}

type gooseLogger struct{}

func (gooseLogger) Printf(format string, args ...any) {
	slog.Info(fmt.Sprintf(format, args...), "component", "goose")
}

func (gooseLogger) Fatalf(format string, args ...any) {
	slog.Error(fmt.Sprintf(format, args...), "component", "goose")
}
