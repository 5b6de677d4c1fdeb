package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wsikandar/portfolio-cms/internal/domain/sociallink"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

type postgresSocialLinkRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSocialLinkRepo(db *pgxpool.Pool, logger logger.Logger) sociallink.Repository {
	return &postgresSocialLinkRepo{db: db, logger: logger}
}

const socialLinkColumns = "id, profile_id, platform, url, icon, enabled"

func scanSocialLink(row pgx.Row) (*sociallink.SocialLink, error) {
	l := &sociallink.SocialLink{}
	err := row.Scan(&l.ID, &l.ProfileID, &l.Platform, &l.URL, &l.Icon, &l.Enabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("social link", "")
		}
		return nil, apperror.NewInternal("failed to scan social link row", err)
	}
	return l, nil
}

func (r *postgresSocialLinkRepo) List(ctx context.Context) ([]*sociallink.SocialLink, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("social links")
	}
	rows, err := r.db.Query(ctx, `SELECT `+socialLinkColumns+` FROM social_links ORDER BY id ASC`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query social links", err)
	}
	defer rows.Close()

	links := make([]*sociallink.SocialLink, 0)
	for rows.Next() {
		l, err := scanSocialLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating social link rows", err)
	}
	return links, nil
}

func (r *postgresSocialLinkRepo) Create(ctx context.Context, l *sociallink.SocialLink) (*sociallink.SocialLink, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("social links")
	}
	if err := l.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := ensureOwnerProfile(ctx, r.db); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO social_links (profile_id, platform, url, icon, enabled)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, OwnerProfileID, l.Platform, l.URL, l.Icon, l.Enabled).Scan(&l.ID); err != nil {
		return nil, apperror.NewInternal("failed to insert social link", err)
	}
	l.ProfileID = OwnerProfileID
	return l, nil
}

func (r *postgresSocialLinkRepo) Update(ctx context.Context, id int64, patch sociallink.Patch) (*sociallink.SocialLink, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("social links")
	}
	if patch.Platform != nil && *patch.Platform == "" {
		return nil, apperror.NewInvalidInput(sociallink.ErrPlatformRequired.Error(), sociallink.ErrPlatformRequired)
	}

	builder := psql.Update("social_links")
	touched := false
	if patch.Platform != nil {
		builder = builder.Set("platform", *patch.Platform)
		touched = true
	}
	if patch.URL != nil {
		builder = builder.Set("url", *patch.URL)
		touched = true
	}
	if patch.Icon != nil {
		builder = builder.Set("icon", *patch.Icon)
		touched = true
	}
	if patch.Enabled != nil {
		builder = builder.Set("enabled", *patch.Enabled)
		touched = true
	}
	if !touched {
		return scanSocialLink(r.db.QueryRow(ctx, `SELECT `+socialLinkColumns+` FROM social_links WHERE id = $1`, id))
	}

	sqlStr, args, err := builder.Where(sq.Eq{"id": id}).Suffix("RETURNING " + socialLinkColumns).ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build social link update", err)
	}
	return scanSocialLink(r.db.QueryRow(ctx, sqlStr, args...))
}

func (r *postgresSocialLinkRepo) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return apperror.NewUnavailable("social links")
	}
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM social_links WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete social link", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("social link", "")
	}
	return nil
}
