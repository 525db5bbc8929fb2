// Package db opens the Postgres handles used by the repositories and applies migrations.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a gorm handle and a pgx pool over the same database. Both are
// verified with a ping before returning.
func Open(ctx context.Context, databaseURL string) (*gorm.DB, *pgxpool.Pool, error) {
	gormDB, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open gorm: %w", err)
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		closeGorm(gormDB)
		return nil, nil, fmt.Errorf("create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		closeGorm(gormDB)
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	return gormDB, pool, nil
}

func Close(gormDB *gorm.DB, pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
	}
	closeGorm(gormDB)
}

func closeGorm(gormDB *gorm.DB) {
	if gormDB == nil {
		return
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
