package content

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/wsikandar/portfolio-cms/internal/domain/certification"
	"github.com/wsikandar/portfolio-cms/internal/domain/education"
	"github.com/wsikandar/portfolio-cms/internal/domain/experience"
	"github.com/wsikandar/portfolio-cms/internal/domain/profile"
	"github.com/wsikandar/portfolio-cms/internal/domain/project"
	"github.com/wsikandar/portfolio-cms/internal/domain/section"
	"github.com/wsikandar/portfolio-cms/internal/domain/service"
	"github.com/wsikandar/portfolio-cms/internal/domain/skill"
	"github.com/wsikandar/portfolio-cms/internal/domain/sociallink"
	"github.com/wsikandar/portfolio-cms/internal/domain/testimonial"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

// SnapshotCache holds the marshalled aggregate response. Implementations are
// best effort; a miss or failure just means the snapshot is rebuilt.
type SnapshotCache interface {
	Get(ctx context.Context) ([]byte, bool)
	Set(ctx context.Context, raw []byte)
	Invalidate(ctx context.Context)
}

// Snapshot is everything the public site needs in one read.
type Snapshot struct {
	Profile         *profile.Profile
	SocialLinks     []*sociallink.SocialLink
	Skills          []*skill.Skill
	WorkExperience  []*experience.WorkExperience
	Projects        []*project.Project
	Education       []*education.Education
	Certifications  []*certification.Certification
	Testimonials    []*testimonial.Testimonial
	Services        []*service.Service
	SectionSettings *section.Settings
}

type AggregateUseCase struct {
	profiles       profile.Repository
	socialLinks    sociallink.Repository
	skills         skill.Repository
	experience     experience.Repository
	projects       project.Repository
	education      education.Repository
	certifications certification.Repository
	testimonials   testimonial.Repository
	services       service.Repository
	sections       section.Repository
	log            logger.Logger
}

func NewAggregateUseCase(
	profiles profile.Repository,
	socialLinks sociallink.Repository,
	skills skill.Repository,
	exp experience.Repository,
	projects project.Repository,
	edu education.Repository,
	certs certification.Repository,
	testimonials testimonial.Repository,
	services service.Repository,
	sections section.Repository,
	log logger.Logger,
) *AggregateUseCase {
	return &AggregateUseCase{
		profiles:       profiles,
		socialLinks:    socialLinks,
		skills:         skills,
		experience:     exp,
		projects:       projects,
		education:      edu,
		certifications: certs,
		testimonials:   testimonials,
		services:       services,
		sections:       sections,
		log:            log,
	}
}

// Snapshot loads every collection concurrently. A failing branch degrades to
// its empty value instead of failing the whole read, so the public site stays
// up while a single table or the whole datastore is unavailable. Profile and
// section settings fall back to their defaults.
func (uc *AggregateUseCase) Snapshot(ctx context.Context) *Snapshot {
	var (
		snap Snapshot
		wg   sync.WaitGroup
	)

	branch := func(name string, load func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := load(); err != nil {
				uc.log.Warn("snapshot branch degraded", zap.String("branch", name), zap.Error(err))
			}
		}()
	}

	branch("profile", func() error {
		p, err := uc.profiles.Get(ctx)
		snap.Profile = p
		return err
	})
	branch("socialLinks", func() error {
		ls, err := uc.socialLinks.List(ctx)
		snap.SocialLinks = ls
		return err
	})
	branch("skills", func() error {
		ss, err := uc.skills.List(ctx)
		snap.Skills = ss
		return err
	})
	branch("workExperience", func() error {
		es, err := uc.experience.List(ctx)
		snap.WorkExperience = es
		return err
	})
	branch("projects", func() error {
		ps, err := uc.projects.List(ctx)
		snap.Projects = ps
		return err
	})
	branch("education", func() error {
		es, err := uc.education.List(ctx)
		snap.Education = es
		return err
	})
	branch("certifications", func() error {
		cs, err := uc.certifications.List(ctx)
		snap.Certifications = cs
		return err
	})
	branch("testimonials", func() error {
		ts, err := uc.testimonials.List(ctx)
		snap.Testimonials = ts
		return err
	})
	branch("services", func() error {
		ss, err := uc.services.List(ctx)
		snap.Services = ss
		return err
	})
	branch("sectionSettings", func() error {
		s, err := uc.sections.Get(ctx)
		snap.SectionSettings = s
		return err
	})

	wg.Wait()

	if snap.Profile == nil {
		snap.Profile = profile.Default()
	}
	if snap.SectionSettings == nil {
		snap.SectionSettings = section.Default()
	}
	return &snap
}
