package persistence

import (
	"context"
	"errors"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wsikandar/portfolio-cms/internal/domain/skill"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{db: db, logger: logger}
}

const skillColumns = "id, profile_id, name, category, level, enabled"

func scanSkill(row pgx.Row) (*skill.Skill, error) {
	s := &skill.Skill{}
	err := row.Scan(&s.ID, &s.ProfileID, &s.Name, &s.Category, &s.Level, &s.Enabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("skill", "")
		}
		return nil, apperror.NewInternal("failed to scan skill row", err)
	}
	return s, nil
}

func (r *postgresSkillRepo) List(ctx context.Context) ([]*skill.Skill, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("skills")
	}
	rows, err := r.db.Query(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY category ASC, name ASC`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills", err)
	}
	defer rows.Close()

	skills := make([]*skill.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill rows", err)
	}
	return skills, nil
}

func (r *postgresSkillRepo) Create(ctx context.Context, s *skill.Skill) (*skill.Skill, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("skills")
	}
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := ensureOwnerProfile(ctx, r.db); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO skills (profile_id, name, category, level, enabled)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, OwnerProfileID, s.Name, s.Category, s.Level, s.Enabled).Scan(&s.ID)
	if err != nil {
		if isCheckViolation(err) {
			return nil, apperror.NewInvalidInput("skill level outside allowed range", err)
		}
		return nil, apperror.NewInternal("failed to insert skill", err)
	}
	s.ProfileID = OwnerProfileID
	return s, nil
}

func (r *postgresSkillRepo) Update(ctx context.Context, id int64, patch skill.Patch) (*skill.Skill, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("skills")
	}
	if err := patch.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	builder := psql.Update("skills")
	touched := false
	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
		touched = true
	}
	if patch.Category != nil {
		builder = builder.Set("category", *patch.Category)
		touched = true
	}
	if patch.Level != nil {
		builder = builder.Set("level", *patch.Level)
		touched = true
	}
	if patch.Enabled != nil {
		builder = builder.Set("enabled", *patch.Enabled)
		touched = true
	}
	if !touched {
		return scanSkill(r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id))
	}

	sqlStr, args, err := builder.Where(sq.Eq{"id": id}).Suffix("RETURNING " + skillColumns).ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build skill update", err)
	}
	return scanSkill(r.db.QueryRow(ctx, sqlStr, args...))
}

func (r *postgresSkillRepo) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return apperror.NewUnavailable("skills")
	}
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill", strconv.FormatInt(id, 10))
	}
	return nil
}
