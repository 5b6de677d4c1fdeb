package persistence

import (
	"context"
	"errors"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wsikandar/portfolio-cms/internal/domain/project"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

const projectColumns = `id, profile_id, title, description, long_description, technologies,
	image_url, video_url, github_url, live_url, category, featured,
	start_date, end_date, sort_order, enabled`

func scanProjectRow(row pgx.Row, l logger.Logger) (*project.Project, error) {
	p := &project.Project{}
	var technologiesBytes []byte

	err := row.Scan(
		&p.ID,
		&p.ProfileID,
		&p.Title,
		&p.Description,
		&p.LongDescription,
		&technologiesBytes,
		&p.ImageURL,
		&p.VideoURL,
		&p.GithubURL,
		&p.LiveURL,
		&p.Category,
		&p.Featured,
		&p.StartDate,
		&p.EndDate,
		&p.SortOrder,
		&p.Enabled,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}

	unmarshalList(technologiesBytes, &p.Technologies, l, "projects.technologies")
	return p, nil
}

func (r *postgresProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("projects")
	}
	// Featured entries lead; the manual sort order refines within each group.
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY featured DESC, sort_order ASC, start_date DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	defer rows.Close()

	projects := make([]*project.Project, 0)
	for rows.Next() {
		p, err := scanProjectRow(rows, r.logger)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("projects")
	}
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := ensureOwnerProfile(ctx, r.db); err != nil {
		return nil, err
	}

	technologiesBytes, err := marshalList(p.Technologies)
	if err != nil {
		return nil, err
	}

	// New projects append after the existing manual order.
	query := `
		INSERT INTO projects (profile_id, title, description, long_description, technologies,
			image_url, video_url, github_url, live_url, category, featured,
			start_date, end_date, sort_order, enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			(SELECT COALESCE(MAX(sort_order), 0) + 1 FROM projects), $14)
		RETURNING id, sort_order
	`
	err = r.db.QueryRow(ctx, query,
		OwnerProfileID, p.Title, p.Description, p.LongDescription, technologiesBytes,
		p.ImageURL, p.VideoURL, p.GithubURL, p.LiveURL, p.Category, p.Featured,
		p.StartDate, p.EndDate, p.Enabled,
	).Scan(&p.ID, &p.SortOrder)
	if err != nil {
		return nil, apperror.NewInternal("failed to insert project", err)
	}
	p.ProfileID = OwnerProfileID
	return p, nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, id int64, patch project.Patch) (*project.Project, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("projects")
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, apperror.NewInvalidInput(project.ErrTitleRequired.Error(), project.ErrTitleRequired)
	}

	builder := psql.Update("projects")
	touched := false
	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
		touched = true
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
		touched = true
	}
	if patch.LongDescription != nil {
		builder = builder.Set("long_description", *patch.LongDescription)
		touched = true
	}
	if patch.Technologies != nil {
		bytes, err := marshalList(*patch.Technologies)
		if err != nil {
			return nil, err
		}
		builder = builder.Set("technologies", bytes)
		touched = true
	}
	if patch.ImageURL != nil {
		builder = builder.Set("image_url", *patch.ImageURL)
		touched = true
	}
	if patch.VideoURL != nil {
		builder = builder.Set("video_url", *patch.VideoURL)
		touched = true
	}
	if patch.GithubURL != nil {
		builder = builder.Set("github_url", *patch.GithubURL)
		touched = true
	}
	if patch.LiveURL != nil {
		builder = builder.Set("live_url", *patch.LiveURL)
		touched = true
	}
	if patch.Category != nil {
		builder = builder.Set("category", *patch.Category)
		touched = true
	}
	if patch.Featured != nil {
		builder = builder.Set("featured", *patch.Featured)
		touched = true
	}
	if patch.StartDate != nil {
		builder = builder.Set("start_date", *patch.StartDate)
		touched = true
	}
	if patch.EndDate != nil {
		builder = builder.Set("end_date", *patch.EndDate)
		touched = true
	}
	if patch.Enabled != nil {
		builder = builder.Set("enabled", *patch.Enabled)
		touched = true
	}
	if !touched {
		return scanProjectRow(r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id), r.logger)
	}

	sqlStr, args, err := builder.Where(sq.Eq{"id": id}).Suffix("RETURNING " + projectColumns).ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build project update", err)
	}
	return scanProjectRow(r.db.QueryRow(ctx, sqlStr, args...), r.logger)
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return apperror.NewUnavailable("projects")
	}
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", strconv.FormatInt(id, 10))
	}
	return nil
}

func (r *postgresProjectRepo) Reorder(ctx context.Context, ids []int64) error {
	if r.db == nil {
		return apperror.NewUnavailable("projects")
	}
	if len(ids) == 0 {
		return apperror.NewInvalidInput("reorder requires at least one project id", nil)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin reorder transaction", err)
	}
	defer tx.Rollback(ctx)

	for pos, id := range ids {
		cmdTag, err := tx.Exec(ctx, `UPDATE projects SET sort_order = $1 WHERE id = $2`, pos+1, id)
		if err != nil {
			return apperror.NewInternal("failed to update project order", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperror.NewNotFound("project", strconv.FormatInt(id, 10))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit reorder transaction", err)
	}
	return nil
}
