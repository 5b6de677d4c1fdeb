package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wsikandar/portfolio-cms/internal/domain/admin"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

type postgresAdminRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresAdminRepo(db *pgxpool.Pool, logger logger.Logger) admin.Repository {
	return &postgresAdminRepo{db: db, logger: logger}
}

func (r *postgresAdminRepo) Get(ctx context.Context) (*admin.Credential, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("admin credential")
	}
	c := &admin.Credential{}
	query := `SELECT id, profile_id, password_hash FROM admin_credentials WHERE profile_id = $1`
	err := r.db.QueryRow(ctx, query, OwnerProfileID).Scan(&c.ID, &c.ProfileID, &c.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to query admin credential", err)
	}
	return c, nil
}

func (r *postgresAdminRepo) Upsert(ctx context.Context, passwordHash string) (*admin.Credential, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("admin credential")
	}
	if passwordHash == "" {
		return nil, apperror.NewInvalidInput("password hash must not be empty", nil)
	}
	if err := ensureOwnerProfile(ctx, r.db); err != nil {
		return nil, err
	}

	c := &admin.Credential{}
	query := `
		INSERT INTO admin_credentials (profile_id, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (profile_id) DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = NOW()
		RETURNING id, profile_id, password_hash
	`
	err := r.db.QueryRow(ctx, query, OwnerProfileID, passwordHash).Scan(&c.ID, &c.ProfileID, &c.PasswordHash)
	if err != nil {
		return nil, apperror.NewInternal("failed to upsert admin credential", err)
	}
	return c, nil
}
