package persistence

import (
	"context"
	"errors"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wsikandar/portfolio-cms/internal/domain/testimonial"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

type postgresTestimonialRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresTestimonialRepo(db *pgxpool.Pool, logger logger.Logger) testimonial.Repository {
	return &postgresTestimonialRepo{db: db, logger: logger}
}

const testimonialColumns = "id, profile_id, name, role, company, content, image_url, rating, enabled"

func scanTestimonial(row pgx.Row) (*testimonial.Testimonial, error) {
	t := &testimonial.Testimonial{}
	err := row.Scan(&t.ID, &t.ProfileID, &t.Name, &t.Role, &t.Company, &t.Content, &t.ImageURL, &t.Rating, &t.Enabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("testimonial", "")
		}
		return nil, apperror.NewInternal("failed to scan testimonial row", err)
	}
	return t, nil
}

func (r *postgresTestimonialRepo) List(ctx context.Context) ([]*testimonial.Testimonial, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("testimonials")
	}
	rows, err := r.db.Query(ctx, `SELECT `+testimonialColumns+` FROM testimonials ORDER BY created_at DESC`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query testimonials", err)
	}
	defer rows.Close()

	entries := make([]*testimonial.Testimonial, 0)
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating testimonial rows", err)
	}
	return entries, nil
}

func (r *postgresTestimonialRepo) Create(ctx context.Context, t *testimonial.Testimonial) (*testimonial.Testimonial, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("testimonials")
	}
	if err := t.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := ensureOwnerProfile(ctx, r.db); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO testimonials (profile_id, name, role, company, content, image_url, rating, enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		OwnerProfileID, t.Name, t.Role, t.Company, t.Content, t.ImageURL, t.Rating, t.Enabled,
	).Scan(&t.ID)
	if err != nil {
		if isCheckViolation(err) {
			return nil, apperror.NewInvalidInput("testimonial rating outside allowed range", err)
		}
		return nil, apperror.NewInternal("failed to insert testimonial", err)
	}
	t.ProfileID = OwnerProfileID
	return t, nil
}

func (r *postgresTestimonialRepo) Update(ctx context.Context, id int64, patch testimonial.Patch) (*testimonial.Testimonial, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("testimonials")
	}
	if err := patch.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	builder := psql.Update("testimonials")
	touched := false
	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
		touched = true
	}
	if patch.Role != nil {
		builder = builder.Set("role", *patch.Role)
		touched = true
	}
	if patch.Company != nil {
		builder = builder.Set("company", *patch.Company)
		touched = true
	}
	if patch.Content != nil {
		builder = builder.Set("content", *patch.Content)
		touched = true
	}
	if patch.ImageURL != nil {
		builder = builder.Set("image_url", *patch.ImageURL)
		touched = true
	}
	if patch.Rating != nil {
		builder = builder.Set("rating", *patch.Rating)
		touched = true
	}
	if patch.Enabled != nil {
		builder = builder.Set("enabled", *patch.Enabled)
		touched = true
	}
	if !touched {
		return scanTestimonial(r.db.QueryRow(ctx, `SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id))
	}

	sqlStr, args, err := builder.Where(sq.Eq{"id": id}).Suffix("RETURNING " + testimonialColumns).ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build testimonial update", err)
	}
	return scanTestimonial(r.db.QueryRow(ctx, sqlStr, args...))
}

func (r *postgresTestimonialRepo) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return apperror.NewUnavailable("testimonials")
	}
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete testimonial", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("testimonial", strconv.FormatInt(id, 10))
	}
	return nil
}
