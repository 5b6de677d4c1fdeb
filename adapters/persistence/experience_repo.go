package persistence

import (
	"context"
	"errors"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wsikandar/portfolio-cms/internal/domain/experience"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) experience.Repository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

const experienceColumns = `id, profile_id, title, company, location, start_date, end_date,
	current, description, achievements, technologies, links, enabled`

func scanExperience(row pgx.Row, l logger.Logger) (*experience.WorkExperience, error) {
	e := &experience.WorkExperience{}
	var achievementsBytes, technologiesBytes, linksBytes []byte

	err := row.Scan(
		&e.ID,
		&e.ProfileID,
		&e.Title,
		&e.Company,
		&e.Location,
		&e.StartDate,
		&e.EndDate,
		&e.Current,
		&e.Description,
		&achievementsBytes,
		&technologiesBytes,
		&linksBytes,
		&e.Enabled,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("work experience", "")
		}
		return nil, apperror.NewInternal("failed to scan work experience row", err)
	}

	unmarshalList(achievementsBytes, &e.Achievements, l, "work_experience.achievements")
	unmarshalList(technologiesBytes, &e.Technologies, l, "work_experience.technologies")
	unmarshalList(linksBytes, &e.Links, l, "work_experience.links")
	return e, nil
}

func (r *postgresExperienceRepo) List(ctx context.Context) ([]*experience.WorkExperience, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("work experience")
	}
	rows, err := r.db.Query(ctx, `SELECT `+experienceColumns+` FROM work_experience ORDER BY start_date DESC`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query work experience", err)
	}
	defer rows.Close()

	entries := make([]*experience.WorkExperience, 0)
	for rows.Next() {
		e, err := scanExperience(rows, r.logger)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating work experience rows", err)
	}
	return entries, nil
}

func (r *postgresExperienceRepo) Create(ctx context.Context, e *experience.WorkExperience) (*experience.WorkExperience, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("work experience")
	}
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := ensureOwnerProfile(ctx, r.db); err != nil {
		return nil, err
	}

	achievementsBytes, err := marshalList(e.Achievements)
	if err != nil {
		return nil, err
	}
	technologiesBytes, err := marshalList(e.Technologies)
	if err != nil {
		return nil, err
	}
	linksBytes, err := marshalList(e.Links)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO work_experience (profile_id, title, company, location, start_date, end_date,
			current, description, achievements, technologies, links, enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err = r.db.QueryRow(ctx, query,
		OwnerProfileID, e.Title, e.Company, e.Location, e.StartDate, e.EndDate,
		e.Current, e.Description, achievementsBytes, technologiesBytes, linksBytes, e.Enabled,
	).Scan(&e.ID)
	if err != nil {
		return nil, apperror.NewInternal("failed to insert work experience", err)
	}
	e.ProfileID = OwnerProfileID
	return e, nil
}

func (r *postgresExperienceRepo) Update(ctx context.Context, id int64, patch experience.Patch) (*experience.WorkExperience, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("work experience")
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, apperror.NewInvalidInput(experience.ErrTitleRequired.Error(), experience.ErrTitleRequired)
	}

	builder := psql.Update("work_experience")
	touched := false
	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
		touched = true
	}
	if patch.Company != nil {
		builder = builder.Set("company", *patch.Company)
		touched = true
	}
	if patch.Location != nil {
		builder = builder.Set("location", *patch.Location)
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
	if patch.Current != nil {
		builder = builder.Set("current", *patch.Current)
		touched = true
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
		touched = true
	}
	if patch.Achievements != nil {
		bytes, err := marshalList(*patch.Achievements)
		if err != nil {
			return nil, err
		}
		builder = builder.Set("achievements", bytes)
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
	if patch.Links != nil {
		bytes, err := marshalList(*patch.Links)
		if err != nil {
			return nil, err
		}
		builder = builder.Set("links", bytes)
		touched = true
	}
	if patch.Enabled != nil {
		builder = builder.Set("enabled", *patch.Enabled)
		touched = true
	}
	if !touched {
		return scanExperience(r.db.QueryRow(ctx, `SELECT `+experienceColumns+` FROM work_experience WHERE id = $1`, id), r.logger)
	}

	sqlStr, args, err := builder.Where(sq.Eq{"id": id}).Suffix("RETURNING " + experienceColumns).ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build work experience update", err)
	}
	return scanExperience(r.db.QueryRow(ctx, sqlStr, args...), r.logger)
}

func (r *postgresExperienceRepo) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return apperror.NewUnavailable("work experience")
	}
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM work_experience WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete work experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("work experience", strconv.FormatInt(id, 10))
	}
	return nil
}
