package persistence

import (
	"context"
	"errors"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wsikandar/portfolio-cms/internal/domain/certification"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

type postgresCertificationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresCertificationRepo(db *pgxpool.Pool, logger logger.Logger) certification.Repository {
	return &postgresCertificationRepo{db: db, logger: logger}
}

const certificationColumns = "id, profile_id, name, issuer, date, url, credential_id, enabled"

func scanCertification(row pgx.Row) (*certification.Certification, error) {
	c := &certification.Certification{}
	err := row.Scan(&c.ID, &c.ProfileID, &c.Name, &c.Issuer, &c.Date, &c.URL, &c.CredentialID, &c.Enabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("certification", "")
		}
		return nil, apperror.NewInternal("failed to scan certification row", err)
	}
	return c, nil
}

func (r *postgresCertificationRepo) List(ctx context.Context) ([]*certification.Certification, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("certifications")
	}
	rows, err := r.db.Query(ctx, `SELECT `+certificationColumns+` FROM certifications ORDER BY date DESC`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query certifications", err)
	}
	defer rows.Close()

	certs := make([]*certification.Certification, 0)
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating certification rows", err)
	}
	return certs, nil
}

func (r *postgresCertificationRepo) Create(ctx context.Context, c *certification.Certification) (*certification.Certification, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("certifications")
	}
	if err := c.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := ensureOwnerProfile(ctx, r.db); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO certifications (profile_id, name, issuer, date, url, credential_id, enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		OwnerProfileID, c.Name, c.Issuer, c.Date, c.URL, c.CredentialID, c.Enabled,
	).Scan(&c.ID)
	if err != nil {
		return nil, apperror.NewInternal("failed to insert certification", err)
	}
	c.ProfileID = OwnerProfileID
	return c, nil
}

func (r *postgresCertificationRepo) Update(ctx context.Context, id int64, patch certification.Patch) (*certification.Certification, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("certifications")
	}
	if patch.Name != nil && *patch.Name == "" {
		return nil, apperror.NewInvalidInput(certification.ErrNameRequired.Error(), certification.ErrNameRequired)
	}

	builder := psql.Update("certifications")
	touched := false
	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
		touched = true
	}
	if patch.Issuer != nil {
		builder = builder.Set("issuer", *patch.Issuer)
		touched = true
	}
	if patch.Date != nil {
		builder = builder.Set("date", *patch.Date)
		touched = true
	}
	if patch.URL != nil {
		builder = builder.Set("url", *patch.URL)
		touched = true
	}
	if patch.CredentialID != nil {
		builder = builder.Set("credential_id", *patch.CredentialID)
		touched = true
	}
	if patch.Enabled != nil {
		builder = builder.Set("enabled", *patch.Enabled)
		touched = true
	}
	if !touched {
		return scanCertification(r.db.QueryRow(ctx, `SELECT `+certificationColumns+` FROM certifications WHERE id = $1`, id))
	}

	sqlStr, args, err := builder.Where(sq.Eq{"id": id}).Suffix("RETURNING " + certificationColumns).ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build certification update", err)
	}
	return scanCertification(r.db.QueryRow(ctx, sqlStr, args...))
}

func (r *postgresCertificationRepo) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return apperror.NewUnavailable("certifications")
	}
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete certification", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("certification", strconv.FormatInt(id, 10))
	}
	return nil
}
