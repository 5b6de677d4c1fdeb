// Package memory implements every repository interface in process memory.
// It backs the unit tests and mirrors the ordering and error contract of the
// postgres repositories.
package memory

import (
	"sync"

	"github.com/wsikandar/portfolio-cms/internal/domain/admin"
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
)

const ownerProfileID int64 = 1

type Store struct {
	mu     sync.Mutex
	nextID int64

	profile    *profile.Profile
	sections   *section.Settings
	credential *admin.Credential

	socialLinks    []*sociallink.SocialLink
	skills         []*skill.Skill
	experience     []*experience.WorkExperience
	projects       []*project.Project
	education      []*education.Education
	certifications []*certification.Certification
	testimonials   []*testimonial.Testimonial
	services       []*service.Service
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) Profiles() *ProfileRepo             { return &ProfileRepo{store: s} }
func (s *Store) Sections() *SectionRepo             { return &SectionRepo{store: s} }
func (s *Store) Credentials() *AdminRepo            { return &AdminRepo{store: s} }
func (s *Store) SocialLinks() *SocialLinkRepo       { return &SocialLinkRepo{store: s} }
func (s *Store) Skills() *SkillRepo                 { return &SkillRepo{store: s} }
func (s *Store) Experience() *ExperienceRepo        { return &ExperienceRepo{store: s} }
func (s *Store) Projects() *ProjectRepo             { return &ProjectRepo{store: s} }
func (s *Store) Education() *EducationRepo          { return &EducationRepo{store: s} }
func (s *Store) Certifications() *CertificationRepo { return &CertificationRepo{store: s} }
func (s *Store) Testimonials() *TestimonialRepo     { return &TestimonialRepo{store: s} }
func (s *Store) Services() *ServiceRepo             { return &ServiceRepo{store: s} }
