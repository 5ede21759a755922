package database

import (
	"context"
	"fmt"
	"time"

	"github.com/artyomlancov333-art/apevaultteam/internal/config"
	"github.com/artyomlancov333-art/apevaultteam/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

var DB *pgxpool.Pool

func ConnectPostgres(cfg *config.Config) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	logger.Success("Connected to PostgreSQL (%s@%s:%s/%s)", cfg.DBUser, cfg.DBHost, cfg.DBPort, cfg.DBName)

	DB = pool

	return pool, nil
}
