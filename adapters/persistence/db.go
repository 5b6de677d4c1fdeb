package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/wsikandar/portfolio-cms/internal/config"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

// OwnerProfileID pins the aggregate root. The schema enforces id=1, so the
// repositories can attach children to a constant.
const OwnerProfileID int64 = 1

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// NewPostgresPool returns a nil pool when no DSN is configured. Read paths
// then degrade to empty results and write paths fail with ErrUnavailable.
func NewPostgresPool(cfg config.Config, log logger.Logger) (*pgxpool.Pool, error) {
	if cfg.DB.DSN == "" {
		log.Warn("DB_DSN not set, running without a datastore")
		return nil, nil
	}

	pool, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("do not create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	log.Info("Connect PostgreSQL successfully.")
	return pool, nil
}

// ensureOwnerProfile creates the pinned profile row with column defaults so
// child inserts never hit a missing foreign key.
func ensureOwnerProfile(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `INSERT INTO profiles (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`, OwnerProfileID)
	if err != nil {
		return apperror.NewInternal("failed to ensure owner profile", err)
	}
	return nil
}

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514"
}

func marshalList(v any) ([]byte, error) {
	bytes, err := json.Marshal(v)
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal list field", err)
	}
	return bytes, nil
}

// unmarshalList degrades a corrupt JSONB column to the zero value instead of
// failing the whole read.
func unmarshalList[T any](raw []byte, dst *[]T, l logger.Logger, field string) {
	if len(raw) == 0 {
		*dst = []T{}
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		l.Warn("Failed to unmarshal list column", zap.String("field", field), zap.Error(err))
		*dst = []T{}
	}
	if *dst == nil {
		*dst = []T{}
	}
}
