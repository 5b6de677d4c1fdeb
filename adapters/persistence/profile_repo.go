package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wsikandar/portfolio-cms/internal/domain/profile"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

const profileColumns = `id, name, title, subtitle, email, phone, location, bio, short_bio,
	profile_image, resume_url, available_for_hire, years_of_experience,
	projects_completed, happy_clients, theme`

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Title,
		&p.Subtitle,
		&p.Email,
		&p.Phone,
		&p.Location,
		&p.Bio,
		&p.ShortBio,
		&p.ProfileImage,
		&p.ResumeURL,
		&p.AvailableForHire,
		&p.YearsOfExperience,
		&p.ProjectsCompleted,
		&p.HappyClients,
		&p.Theme,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "1")
		}
		return nil, apperror.NewInternal("failed to scan profile row", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("profile")
	}
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	p, err := scanProfile(r.db.QueryRow(ctx, query, OwnerProfileID))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("profile")
	}
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if p.Theme == "" {
		p.Theme = profile.ThemeProfessional
	}

	// id is pinned, so a concurrent first write resolves to the update arm.
	query := `
		INSERT INTO profiles (id, name, title, subtitle, email, phone, location, bio, short_bio,
			profile_image, resume_url, available_for_hire, years_of_experience,
			projects_completed, happy_clients, theme, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			title = EXCLUDED.title,
			subtitle = EXCLUDED.subtitle,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			short_bio = EXCLUDED.short_bio,
			profile_image = EXCLUDED.profile_image,
			resume_url = EXCLUDED.resume_url,
			available_for_hire = EXCLUDED.available_for_hire,
			years_of_experience = EXCLUDED.years_of_experience,
			projects_completed = EXCLUDED.projects_completed,
			happy_clients = EXCLUDED.happy_clients,
			theme = EXCLUDED.theme,
			updated_at = NOW()
		RETURNING ` + profileColumns
	return scanProfile(r.db.QueryRow(ctx, query,
		OwnerProfileID, p.Name, p.Title, p.Subtitle, p.Email, p.Phone, p.Location,
		p.Bio, p.ShortBio, p.ProfileImage, p.ResumeURL, p.AvailableForHire,
		p.YearsOfExperience, p.ProjectsCompleted, p.HappyClients, p.Theme,
	))
}

func (r *postgresProfileRepo) Update(ctx context.Context, patch profile.Patch) (*profile.Profile, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("profile")
	}
	if err := patch.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	// The row may not exist yet; column defaults fill the unmentioned fields.
	if err := ensureOwnerProfile(ctx, r.db); err != nil {
		return nil, err
	}

	builder := psql.Update("profiles")
	touched := false
	set := func(column string, v any) {
		builder = builder.Set(column, v)
		touched = true
	}
	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Subtitle != nil {
		set("subtitle", *patch.Subtitle)
	}
	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.Phone != nil {
		set("phone", *patch.Phone)
	}
	if patch.Location != nil {
		set("location", *patch.Location)
	}
	if patch.Bio != nil {
		set("bio", *patch.Bio)
	}
	if patch.ShortBio != nil {
		set("short_bio", *patch.ShortBio)
	}
	if patch.ProfileImage != nil {
		set("profile_image", *patch.ProfileImage)
	}
	if patch.ResumeURL != nil {
		set("resume_url", *patch.ResumeURL)
	}
	if patch.AvailableForHire != nil {
		set("available_for_hire", *patch.AvailableForHire)
	}
	if patch.YearsOfExperience != nil {
		set("years_of_experience", *patch.YearsOfExperience)
	}
	if patch.ProjectsCompleted != nil {
		set("projects_completed", *patch.ProjectsCompleted)
	}
	if patch.HappyClients != nil {
		set("happy_clients", *patch.HappyClients)
	}
	if patch.Theme != nil {
		set("theme", *patch.Theme)
	}
	if !touched {
		return scanProfile(r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, OwnerProfileID))
	}

	sqlStr, args, err := builder.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": OwnerProfileID}).
		Suffix("RETURNING " + profileColumns).ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build profile update", err)
	}
	return scanProfile(r.db.QueryRow(ctx, sqlStr, args...))
}

func (r *postgresProfileRepo) SetTheme(ctx context.Context, theme profile.Theme) (*profile.Profile, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("profile")
	}
	if !theme.Valid() {
		return nil, apperror.NewInvalidInput(profile.ErrInvalidTheme.Error(), profile.ErrInvalidTheme)
	}

	// Creates the default row when none exists; only theme differs from the
	// column defaults on that path.
	query := `
		INSERT INTO profiles (id, theme) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET theme = EXCLUDED.theme, updated_at = NOW()
		RETURNING ` + profileColumns
	return scanProfile(r.db.QueryRow(ctx, query, OwnerProfileID, theme))
}
