package main

import (
	"context"
	"log"
	"os"

	"github.com/wsikandar/portfolio-cms/adapters/persistence"
	"github.com/wsikandar/portfolio-cms/internal/config"
	"github.com/wsikandar/portfolio-cms/internal/domain/profile"
	"github.com/wsikandar/portfolio-cms/internal/domain/project"
	"github.com/wsikandar/portfolio-cms/internal/domain/section"
	"github.com/wsikandar/portfolio-cms/internal/domain/skill"
	"github.com/wsikandar/portfolio-cms/pkg/auth"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

// Seeds the owner profile, default section settings and the admin credential.
// Safe to run repeatedly: singletons are upserted and collections are only
// filled when empty.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	if dbPool == nil {
		appLogger.Fatal("DB_DSN is required for seeding", nil)
	}
	defer dbPool.Close()

	ctx := context.Background()

	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	sectionRepo := persistence.NewPostgresSectionRepo(dbPool, appLogger)
	adminRepo := persistence.NewPostgresAdminRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		appLogger.Fatal("ADMIN_PASSWORD is required for seeding", nil)
	}
	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		appLogger.Fatal("cannot hash admin password", err)
	}
	if _, err := adminRepo.Upsert(ctx, hash); err != nil {
		appLogger.Fatal("cannot seed admin credential", err)
	}

	existing, err := profileRepo.Get(ctx)
	if err != nil {
		appLogger.Fatal("cannot read profile", err)
	}
	if existing == nil {
		seed := profile.Default()
		seed.Subtitle = "Building reliable backend systems"
		seed.Bio = "Software engineer focused on APIs, data plumbing and infrastructure."
		seed.ShortBio = "Backend engineer."
		seed.AvailableForHire = true
		if _, err := profileRepo.Upsert(ctx, seed); err != nil {
			appLogger.Fatal("cannot seed profile", err)
		}
	}

	if _, err := sectionRepo.Upsert(ctx, section.Default()); err != nil {
		appLogger.Fatal("cannot seed section settings", err)
	}

	skills, err := skillRepo.List(ctx)
	if err != nil {
		appLogger.Fatal("cannot read skills", err)
	}
	if len(skills) == 0 {
		samples := []skill.Skill{
			{Name: "Go", Category: "Backend", Level: 90, Enabled: true},
			{Name: "PostgreSQL", Category: "Database", Level: 85, Enabled: true},
			{Name: "Redis", Category: "Database", Level: 75, Enabled: true},
		}
		for i := range samples {
			if _, err := skillRepo.Create(ctx, &samples[i]); err != nil {
				appLogger.Fatal("cannot seed skill", err)
			}
		}
	}

	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	projects, err := projectRepo.List(ctx)
	if err != nil {
		appLogger.Fatal("cannot read projects", err)
	}
	if len(projects) == 0 {
		sample := &project.Project{
			Title:       "Portfolio CMS",
			Description: "Content API behind this site: action-dispatched writes, one aggregate read.",
			Technologies: []string{
				"Go", "PostgreSQL", "Redis",
			},
			GithubURL: "https://github.com/wsikandar/portfolio-cms",
			Category:  "Backend",
			Featured:  true,
			StartDate: "2026-01-01",
			Enabled:   true,
		}
		if _, err := projectRepo.Create(ctx, sample); err != nil {
			appLogger.Fatal("cannot seed project", err)
		}
	}

	appLogger.Info("Seeding finished.")
}
