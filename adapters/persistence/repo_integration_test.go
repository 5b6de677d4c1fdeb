package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/wsikandar/portfolio-cms/internal/domain/profile"
	"github.com/wsikandar/portfolio-cms/internal/domain/project"
	"github.com/wsikandar/portfolio-cms/internal/domain/section"
	"github.com/wsikandar/portfolio-cms/internal/domain/skill"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

type RepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger
}

func (s *RepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool
	s.testLogger = logger.NewNop()
}

func (s *RepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RepoIntegrationTestSuite))
}

func (s *RepoIntegrationTestSuite) Test_ProfileUpsertAndSetTheme() {
	ctx := context.Background()
	repo := NewPostgresProfileRepo(s.dbPool, s.testLogger)

	p, err := repo.SetTheme(ctx, profile.ThemeBauhaus)
	s.Require().NoError(err, "SetTheme creates the row when absent")
	s.Equal(profile.ThemeBauhaus, p.Theme)
	s.Equal("Portfolio", p.Name, "other columns get their defaults")

	p.Name = "Warda Sikandar"
	p.YearsOfExperience = 7
	updated, err := repo.Upsert(ctx, p)
	s.Require().NoError(err)
	s.Equal("Warda Sikandar", updated.Name)
	s.Equal(7, updated.YearsOfExperience)

	got, err := repo.Get(ctx)
	s.Require().NoError(err)
	s.Equal("Warda Sikandar", got.Name)
	s.Equal(profile.ThemeBauhaus, got.Theme)

	title := "Staff Engineer"
	patched, err := repo.Update(ctx, profile.Patch{Title: &title})
	s.Require().NoError(err)
	s.Equal("Staff Engineer", patched.Title)
	s.Equal("Warda Sikandar", patched.Name, "columns absent from the patch keep their value")
	s.Equal(7, patched.YearsOfExperience)
	s.Equal(profile.ThemeBauhaus, patched.Theme)
}

func (s *RepoIntegrationTestSuite) Test_SkillCRUDAndOrdering() {
	ctx := context.Background()
	repo := NewPostgresSkillRepo(s.dbPool, s.testLogger)

	for _, sk := range []skill.Skill{
		{Name: "PostgreSQL", Category: "Database", Level: 85, Enabled: true},
		{Name: "Go", Category: "Backend", Level: 90, Enabled: true},
		{Name: "Gin", Category: "Backend", Level: 80, Enabled: true},
	} {
		sk := sk
		_, err := repo.Create(ctx, &sk)
		s.Require().NoError(err)
	}

	skills, err := repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(skills, 3)
	s.Equal("Gin", skills[0].Name, "category asc, then name asc")
	s.Equal("Go", skills[1].Name)
	s.Equal("PostgreSQL", skills[2].Name)

	level := 99
	updated, err := repo.Update(ctx, skills[1].ID, skill.Patch{Level: &level})
	s.Require().NoError(err)
	s.Equal(99, updated.Level)
	s.Equal("Go", updated.Name)

	s.Require().NoError(repo.Delete(ctx, skills[0].ID))
	err = repo.Delete(ctx, skills[0].ID)
	s.Require().Error(err)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *RepoIntegrationTestSuite) Test_ProjectSortOrderAndReorder() {
	ctx := context.Background()
	repo := NewPostgresProjectRepo(s.dbPool, s.testLogger)

	var ids []int64
	for _, title := range []string{"alpha", "beta", "gamma"} {
		p := project.Project{Title: title, Enabled: true}
		created, err := repo.Create(ctx, &p)
		s.Require().NoError(err)
		ids = append(ids, created.ID)
	}

	s.Require().NoError(repo.Reorder(ctx, []int64{ids[2], ids[0], ids[1]}))

	projects, err := repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(projects, 3)
	s.Equal("gamma", projects[0].Title)
	s.Equal("alpha", projects[1].Title)
	s.Equal("beta", projects[2].Title)

	err = repo.Reorder(ctx, []int64{99999})
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *RepoIntegrationTestSuite) Test_SectionSettingsUpsert() {
	ctx := context.Background()
	repo := NewPostgresSectionRepo(s.dbPool, s.testLogger)

	got, err := repo.Get(ctx)
	s.Require().NoError(err)
	s.Nil(got, "no row before the first write")

	settings := section.Default()
	settings.Testimonials = false
	saved, err := repo.Upsert(ctx, settings)
	s.Require().NoError(err)
	s.False(saved.Testimonials)
	s.True(saved.Hero)

	settings.Contact = false
	saved, err = repo.Upsert(ctx, settings)
	s.Require().NoError(err, "second upsert updates in place")
	s.False(saved.Contact)

	got, err = repo.Get(ctx)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.False(got.Testimonials)

	hero := false
	patched, err := repo.Update(ctx, section.Patch{Hero: &hero})
	s.Require().NoError(err)
	s.False(patched.Hero)
	s.False(patched.Testimonials, "flags absent from the patch keep their stored value")
	s.True(patched.Skills)
}

func (s *RepoIntegrationTestSuite) Test_AdminCredentialUpsert() {
	ctx := context.Background()
	repo := NewPostgresAdminRepo(s.dbPool, s.testLogger)

	got, err := repo.Get(ctx)
	s.Require().NoError(err)
	s.Nil(got)

	cred, err := repo.Upsert(ctx, "hash-one")
	s.Require().NoError(err)
	s.Equal("hash-one", cred.PasswordHash)

	cred, err = repo.Upsert(ctx, "hash-two")
	s.Require().NoError(err)
	s.Equal("hash-two", cred.PasswordHash)

	got, err = repo.Get(ctx)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("hash-two", got.PasswordHash)
}
