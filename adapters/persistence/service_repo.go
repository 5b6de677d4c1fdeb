package persistence

import (
	"context"
	"errors"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wsikandar/portfolio-cms/internal/domain/service"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

type postgresServiceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresServiceRepo(db *pgxpool.Pool, logger logger.Logger) service.Repository {
	return &postgresServiceRepo{db: db, logger: logger}
}

const serviceColumns = "id, profile_id, title, description, icon, features, enabled"

func scanService(row pgx.Row, l logger.Logger) (*service.Service, error) {
	s := &service.Service{}
	var featuresBytes []byte

	err := row.Scan(&s.ID, &s.ProfileID, &s.Title, &s.Description, &s.Icon, &featuresBytes, &s.Enabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("service", "")
		}
		return nil, apperror.NewInternal("failed to scan service row", err)
	}

	unmarshalList(featuresBytes, &s.Features, l, "services.features")
	return s, nil
}

func (r *postgresServiceRepo) List(ctx context.Context) ([]*service.Service, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("services")
	}
	rows, err := r.db.Query(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY id ASC`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query services", err)
	}
	defer rows.Close()

	services := make([]*service.Service, 0)
	for rows.Next() {
		s, err := scanService(rows, r.logger)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating service rows", err)
	}
	return services, nil
}

func (r *postgresServiceRepo) Create(ctx context.Context, s *service.Service) (*service.Service, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("services")
	}
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := ensureOwnerProfile(ctx, r.db); err != nil {
		return nil, err
	}

	featuresBytes, err := marshalList(s.Features)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO services (profile_id, title, description, icon, features, enabled)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err = r.db.QueryRow(ctx, query,
		OwnerProfileID, s.Title, s.Description, s.Icon, featuresBytes, s.Enabled,
	).Scan(&s.ID)
	if err != nil {
		return nil, apperror.NewInternal("failed to insert service", err)
	}
	s.ProfileID = OwnerProfileID
	return s, nil
}

func (r *postgresServiceRepo) Update(ctx context.Context, id int64, patch service.Patch) (*service.Service, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("services")
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, apperror.NewInvalidInput(service.ErrTitleRequired.Error(), service.ErrTitleRequired)
	}

	builder := psql.Update("services")
	touched := false
	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
		touched = true
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
		touched = true
	}
	if patch.Icon != nil {
		builder = builder.Set("icon", *patch.Icon)
		touched = true
	}
	if patch.Features != nil {
		bytes, err := marshalList(*patch.Features)
		if err != nil {
			return nil, err
		}
		builder = builder.Set("features", bytes)
		touched = true
	}
	if patch.Enabled != nil {
		builder = builder.Set("enabled", *patch.Enabled)
		touched = true
	}
	if !touched {
		return scanService(r.db.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id), r.logger)
	}

	sqlStr, args, err := builder.Where(sq.Eq{"id": id}).Suffix("RETURNING " + serviceColumns).ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build service update", err)
	}
	return scanService(r.db.QueryRow(ctx, sqlStr, args...), r.logger)
}

func (r *postgresServiceRepo) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return apperror.NewUnavailable("services")
	}
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete service", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("service", strconv.FormatInt(id, 10))
	}
	return nil
}
