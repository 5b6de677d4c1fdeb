package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wsikandar/portfolio-cms/internal/domain/section"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

type postgresSectionRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSectionRepo(db *pgxpool.Pool, logger logger.Logger) section.Repository {
	return &postgresSectionRepo{db: db, logger: logger}
}

const sectionColumns = `id, profile_id, hero, about, skills, experience, projects, personal_projects,
	education, certifications, services, testimonials, achievements, languages,
	interests, publications, awards, volunteer, contact, timeline`

func scanSection(row pgx.Row) (*section.Settings, error) {
	s := &section.Settings{}
	err := row.Scan(
		&s.ID,
		&s.ProfileID,
		&s.Hero,
		&s.About,
		&s.Skills,
		&s.Experience,
		&s.Projects,
		&s.PersonalProjects,
		&s.Education,
		&s.Certifications,
		&s.Services,
		&s.Testimonials,
		&s.Achievements,
		&s.Languages,
		&s.Interests,
		&s.Publications,
		&s.Awards,
		&s.Volunteer,
		&s.Contact,
		&s.Timeline,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("section settings", "1")
		}
		return nil, apperror.NewInternal("failed to scan section settings row", err)
	}
	return s, nil
}

func (r *postgresSectionRepo) Get(ctx context.Context) (*section.Settings, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("section settings")
	}
	query := `SELECT ` + sectionColumns + ` FROM section_settings WHERE profile_id = $1`
	s, err := scanSection(r.db.QueryRow(ctx, query, OwnerProfileID))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *postgresSectionRepo) Update(ctx context.Context, patch section.Patch) (*section.Settings, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("section settings")
	}
	if err := ensureOwnerProfile(ctx, r.db); err != nil {
		return nil, err
	}
	// Column defaults make the first row all-visible; later patches only
	// touch the supplied flags.
	if _, err := r.db.Exec(ctx,
		`INSERT INTO section_settings (profile_id) VALUES ($1) ON CONFLICT (profile_id) DO NOTHING`,
		OwnerProfileID,
	); err != nil {
		return nil, apperror.NewInternal("failed to ensure section settings row", err)
	}

	builder := psql.Update("section_settings")
	touched := false
	set := func(column string, v *bool) {
		if v != nil {
			builder = builder.Set(column, *v)
			touched = true
		}
	}
	set("hero", patch.Hero)
	set("about", patch.About)
	set("skills", patch.Skills)
	set("experience", patch.Experience)
	set("projects", patch.Projects)
	set("personal_projects", patch.PersonalProjects)
	set("education", patch.Education)
	set("certifications", patch.Certifications)
	set("services", patch.Services)
	set("testimonials", patch.Testimonials)
	set("achievements", patch.Achievements)
	set("languages", patch.Languages)
	set("interests", patch.Interests)
	set("publications", patch.Publications)
	set("awards", patch.Awards)
	set("volunteer", patch.Volunteer)
	set("contact", patch.Contact)
	set("timeline", patch.Timeline)
	if !touched {
		return scanSection(r.db.QueryRow(ctx,
			`SELECT `+sectionColumns+` FROM section_settings WHERE profile_id = $1`, OwnerProfileID))
	}

	sqlStr, args, err := builder.Where(sq.Eq{"profile_id": OwnerProfileID}).
		Suffix("RETURNING " + sectionColumns).ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build section settings update", err)
	}
	return scanSection(r.db.QueryRow(ctx, sqlStr, args...))
}

func (r *postgresSectionRepo) Upsert(ctx context.Context, s *section.Settings) (*section.Settings, error) {
	if r.db == nil {
		return nil, apperror.NewUnavailable("section settings")
	}
	if err := ensureOwnerProfile(ctx, r.db); err != nil {
		return nil, err
	}

	// profile_id is unique, so the concurrent first-write race resolves to
	// the update arm instead of a second row.
	query := `
		INSERT INTO section_settings (profile_id, hero, about, skills, experience, projects,
			personal_projects, education, certifications, services, testimonials,
			achievements, languages, interests, publications, awards, volunteer,
			contact, timeline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (profile_id) DO UPDATE SET
			hero = EXCLUDED.hero,
			about = EXCLUDED.about,
			skills = EXCLUDED.skills,
			experience = EXCLUDED.experience,
			projects = EXCLUDED.projects,
			personal_projects = EXCLUDED.personal_projects,
			education = EXCLUDED.education,
			certifications = EXCLUDED.certifications,
			services = EXCLUDED.services,
			testimonials = EXCLUDED.testimonials,
			achievements = EXCLUDED.achievements,
			languages = EXCLUDED.languages,
			interests = EXCLUDED.interests,
			publications = EXCLUDED.publications,
			awards = EXCLUDED.awards,
			volunteer = EXCLUDED.volunteer,
			contact = EXCLUDED.contact,
			timeline = EXCLUDED.timeline
		RETURNING ` + sectionColumns
	return scanSection(r.db.QueryRow(ctx, query,
		OwnerProfileID, s.Hero, s.About, s.Skills, s.Experience, s.Projects,
		s.PersonalProjects, s.Education, s.Certifications, s.Services, s.Testimonials,
		s.Achievements, s.Languages, s.Interests, s.Publications, s.Awards,
		s.Volunteer, s.Contact, s.Timeline,
	))
}
