package main

import (
	"log"

	"github.com/wsikandar/portfolio-cms/adapters/event"
	httpAdapter "github.com/wsikandar/portfolio-cms/adapters/http"
	"github.com/wsikandar/portfolio-cms/adapters/media_storage"
	"github.com/wsikandar/portfolio-cms/adapters/persistence"
	"github.com/wsikandar/portfolio-cms/internal/application/dispatch"
	"github.com/wsikandar/portfolio-cms/internal/application/service"
	authUC "github.com/wsikandar/portfolio-cms/internal/application/usecase/auth"
	"github.com/wsikandar/portfolio-cms/internal/application/usecase/content"
	"github.com/wsikandar/portfolio-cms/internal/config"
	"github.com/wsikandar/portfolio-cms/pkg/auth"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Portfolio CMS API Server...")

	// Datastores. Each is optional: the server still serves the default
	// snapshot without any of them.
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	if dbPool != nil {
		defer dbPool.Close()
	}

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	kafkaClient := event.NewKafkaProducerClient(cfg, appLogger)
	defer kafkaClient.Close()

	// Repositories
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	socialLinkRepo := persistence.NewPostgresSocialLinkRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, appLogger)
	certificationRepo := persistence.NewPostgresCertificationRepo(dbPool, appLogger)
	testimonialRepo := persistence.NewPostgresTestimonialRepo(dbPool, appLogger)
	serviceRepo := persistence.NewPostgresServiceRepo(dbPool, appLogger)
	sectionRepo := persistence.NewPostgresSectionRepo(dbPool, appLogger)
	adminRepo := persistence.NewPostgresAdminRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	snapshotCache := persistence.NewRedisSnapshotCache(redisClient, cfg.Redis.SnapshotTTL, appLogger)

	var uploader service.Uploader
	if cfg.Cloudinary.CloudName != "" {
		uploader, err = media_storage.NewCloudinaryAdapter(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("failed to initialize uploader", err)
		}
	} else {
		appLogger.Warn("Cloudinary not configured, media upload disabled")
	}

	// Use Cases
	aggregateUseCase := content.NewAggregateUseCase(
		profileRepo,
		socialLinkRepo,
		skillRepo,
		experienceRepo,
		projectRepo,
		educationRepo,
		certificationRepo,
		testimonialRepo,
		serviceRepo,
		sectionRepo,
		appLogger,
	)
	loginUseCase := authUC.NewLoginUseCase(adminRepo, jwtSvc, appLogger)
	rotateUseCase := authUC.NewRotatePasswordUseCase(adminRepo, appLogger)

	dispatcher := dispatch.NewDispatcher(
		dispatch.Repositories{
			Profiles:       profileRepo,
			SocialLinks:    socialLinkRepo,
			Skills:         skillRepo,
			Experience:     experienceRepo,
			Projects:       projectRepo,
			Education:      educationRepo,
			Certifications: certificationRepo,
			Testimonials:   testimonialRepo,
			Services:       serviceRepo,
			Sections:       sectionRepo,
			Credentials:    adminRepo,
		},
		loginUseCase,
		rotateUseCase,
		snapshotCache,
		kafkaClient,
		appLogger,
	)

	// HTTP
	handlers := httpAdapter.Handlers{
		Portfolio: httpAdapter.NewPortfolioHandler(aggregateUseCase, snapshotCache, appLogger),
		Actions:   httpAdapter.NewActionHandler(dispatcher, appLogger),
		Media:     httpAdapter.NewMediaHandler(uploader, appLogger),
	}
	router := httpAdapter.NewRouter(cfg, jwtSvc, handlers)

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
