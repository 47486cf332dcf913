package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"credit-application/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultMaxConns          = 10
	defaultMaxConnIdleTime   = 5 * time.Minute
	defaultHealthCheckPeriod = time.Minute
	defaultPingTimeout       = 5 * time.Second
)

var errEmptyDatabaseURL = errors.New("database.url is not configured")

// OpenPool builds the pool backing the customer and credit repositories and
// refuses to hand it out until the server answers a ping.
func OpenPool(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	log := logger.With(slog.String("component", "postgresPool"))

	poolCfg, err := newPoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "Opening credit store pool",
		slog.String("host", poolCfg.ConnConfig.Host),
		slog.String("database", poolCfg.ConnConfig.Database),
		slog.Int("maxConns", int(poolCfg.MaxConns)))
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open credit store pool: %w", err)
	}

	if err := ping(ctx, pool, pingTimeout(cfg), log); err != nil {
		pool.Close()
		return nil, err
	}

	log.InfoContext(ctx, "Credit store pool ready")
	return pool, nil
}

func newPoolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	if cfg.URL == "" {
		return nil, errEmptyDatabaseURL
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid database.url: %w", err)
	}

	poolCfg.MaxConns = orDefault(cfg.MaxConns, defaultMaxConns)
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnIdleTime = orDefault(cfg.MaxConnIdleTime, defaultMaxConnIdleTime)
	poolCfg.HealthCheckPeriod = orDefault(cfg.HealthCheckPeriod, defaultHealthCheckPeriod)
	return poolCfg, nil
}

func pingTimeout(cfg config.DatabaseConfig) time.Duration {
	return orDefault(cfg.PingTimeout, defaultPingTimeout)
}

func orDefault[T int32 | time.Duration](v, def T) T {
	if v > 0 {
		return v
	}
	return def
}

func ping(ctx context.Context, db DBPool, timeout time.Duration, log *slog.Logger) error {
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.Ping(pingCtx); err != nil {
		log.ErrorContext(ctx, "Credit store did not answer ping", slog.Duration("timeout", timeout), slog.Any("error", err))
		return fmt.Errorf("credit store unreachable: %w", err)
	}
	return nil
}
