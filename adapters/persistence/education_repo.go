package persistence

import (
	"context"
	"errors"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wsikandar/portfolio-cms/internal/domain/education"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, logger logger.Logger) education.Repository {
	return &postgresEducationRepo{db: db, logger: logger}
}

const educationColumns = `id, profile_id, degree, institution, location, start_date, end_date,
	description, achievements, enabled`

func scanEducation(row pgx.Row, l logger.Logger) (*education.Education, error) {
	e := &education.Education{}
	var achievementsBytes []byte

	err := row.Scan(
		&e.ID,
		&e.ProfileID,
		&e.Degree,
		&e.Institution,
		&e.Location,
		&e.StartDate,
		&e.EndDate,
		&e.Description,
		&achievementsBytes,
		&e.Enabled,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("education", "")
		}
		return nil, apperror.NewInternal("failed to scan education row", err)
	}

	unmarshalList(achievementsBytes, &e.Achievements, l, "education.achievements")
	return e, nil
}

func (r *postgresEducationRepo) List(ctx context.Context) ([]*education.Education, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("education")
	}
	rows, err := r.db.Query(ctx, `SELECT `+educationColumns+` FROM education ORDER BY start_date DESC`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query education", err)
	}
	defer rows.Close()

	entries := make([]*education.Education, 0)
	for rows.Next() {
		e, err := scanEducation(rows, r.logger)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return entries, nil
}

func (r *postgresEducationRepo) Create(ctx context.Context, e *education.Education) (*education.Education, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("education")
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

	query := `
		INSERT INTO education (profile_id, degree, institution, location, start_date, end_date,
			description, achievements, enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err = r.db.QueryRow(ctx, query,
		OwnerProfileID, e.Degree, e.Institution, e.Location, e.StartDate, e.EndDate,
		e.Description, achievementsBytes, e.Enabled,
	).Scan(&e.ID)
	if err != nil {
		return nil, apperror.NewInternal("failed to insert education", err)
	}
	e.ProfileID = OwnerProfileID
	return e, nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, id int64, patch education.Patch) (*education.Education, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("education")
	}
	if patch.Degree != nil && *patch.Degree == "" {
		return nil, apperror.NewInvalidInput(education.ErrDegreeRequired.Error(), education.ErrDegreeRequired)
	}

	builder := psql.Update("education")
	touched := false
	if patch.Degree != nil {
		builder = builder.Set("degree", *patch.Degree)
		touched = true
	}
	if patch.Institution != nil {
		builder = builder.Set("institution", *patch.Institution)
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
	if patch.Enabled != nil {
		builder = builder.Set("enabled", *patch.Enabled)
		touched = true
	}
	if !touched {
		return scanEducation(r.db.QueryRow(ctx, `SELECT `+educationColumns+` FROM education WHERE id = $1`, id), r.logger)
	}

	sqlStr, args, err := builder.Where(sq.Eq{"id": id}).Suffix("RETURNING " + educationColumns).ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build education update", err)
	}
	return scanEducation(r.db.QueryRow(ctx, sqlStr, args...), r.logger)
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return apperror.NewUnavailable("education")
	}
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", strconv.FormatInt(id, 10))
	}
	return nil
}
