package http

import (
	"strconv"

	"github.com/wsikandar/portfolio-cms/internal/application/dispatch"
	"github.com/wsikandar/portfolio-cms/internal/application/usecase/content"
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

// Wire ids are decimal strings; the numeric type is a storage detail.
func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

type SocialLinkDTO struct {
	ID string `json:"id"`
	sociallink.SocialLink
}

func toSocialLinkDTO(l *sociallink.SocialLink) SocialLinkDTO {
	return SocialLinkDTO{ID: formatID(l.ID), SocialLink: *l}
}

type SkillDTO struct {
	ID string `json:"id"`
	skill.Skill
}

func toSkillDTO(s *skill.Skill) SkillDTO {
	return SkillDTO{ID: formatID(s.ID), Skill: *s}
}

type WorkExperienceDTO struct {
	ID string `json:"id"`
	experience.WorkExperience
}

func toWorkExperienceDTO(e *experience.WorkExperience) WorkExperienceDTO {
	cp := *e
	if cp.Achievements == nil {
		cp.Achievements = []string{}
	}
	if cp.Technologies == nil {
		cp.Technologies = []string{}
	}
	if cp.Links == nil {
		cp.Links = []experience.Link{}
	}
	return WorkExperienceDTO{ID: formatID(e.ID), WorkExperience: cp}
}

type ProjectDTO struct {
	ID string `json:"id"`
	project.Project
}

func toProjectDTO(p *project.Project) ProjectDTO {
	cp := *p
	if cp.Technologies == nil {
		cp.Technologies = []string{}
	}
	return ProjectDTO{ID: formatID(p.ID), Project: cp}
}

type EducationDTO struct {
	ID string `json:"id"`
	education.Education
}

func toEducationDTO(e *education.Education) EducationDTO {
	cp := *e
	if cp.Achievements == nil {
		cp.Achievements = []string{}
	}
	return EducationDTO{ID: formatID(e.ID), Education: cp}
}

type CertificationDTO struct {
	ID string `json:"id"`
	certification.Certification
}

func toCertificationDTO(c *certification.Certification) CertificationDTO {
	return CertificationDTO{ID: formatID(c.ID), Certification: *c}
}

type TestimonialDTO struct {
	ID string `json:"id"`
	testimonial.Testimonial
}

func toTestimonialDTO(t *testimonial.Testimonial) TestimonialDTO {
	return TestimonialDTO{ID: formatID(t.ID), Testimonial: *t}
}

type ServiceDTO struct {
	ID string `json:"id"`
	service.Service
}

func toServiceDTO(s *service.Service) ServiceDTO {
	cp := *s
	if cp.Features == nil {
		cp.Features = []string{}
	}
	return ServiceDTO{ID: formatID(s.ID), Service: cp}
}

// PortfolioResponse is the one-shot read the public site consumes.
type PortfolioResponse struct {
	Profile         profile.Profile     `json:"profile"`
	SocialLinks     []SocialLinkDTO     `json:"socialLinks"`
	Skills          []SkillDTO          `json:"skills"`
	WorkExperience  []WorkExperienceDTO `json:"workExperience"`
	Projects        []ProjectDTO        `json:"projects"`
	Education       []EducationDTO      `json:"education"`
	Certifications  []CertificationDTO  `json:"certifications"`
	Testimonials    []TestimonialDTO    `json:"testimonials"`
	Services        []ServiceDTO        `json:"services"`
	SectionSettings section.Settings    `json:"sectionSettings"`
}

func ToPortfolioResponse(snap *content.Snapshot) PortfolioResponse {
	resp := PortfolioResponse{
		Profile:         *snap.Profile,
		SocialLinks:     make([]SocialLinkDTO, 0, len(snap.SocialLinks)),
		Skills:          make([]SkillDTO, 0, len(snap.Skills)),
		WorkExperience:  make([]WorkExperienceDTO, 0, len(snap.WorkExperience)),
		Projects:        make([]ProjectDTO, 0, len(snap.Projects)),
		Education:       make([]EducationDTO, 0, len(snap.Education)),
		Certifications:  make([]CertificationDTO, 0, len(snap.Certifications)),
		Testimonials:    make([]TestimonialDTO, 0, len(snap.Testimonials)),
		Services:        make([]ServiceDTO, 0, len(snap.Services)),
		SectionSettings: *snap.SectionSettings,
	}
	for _, l := range snap.SocialLinks {
		resp.SocialLinks = append(resp.SocialLinks, toSocialLinkDTO(l))
	}
	for _, s := range snap.Skills {
		resp.Skills = append(resp.Skills, toSkillDTO(s))
	}
	for _, e := range snap.WorkExperience {
		resp.WorkExperience = append(resp.WorkExperience, toWorkExperienceDTO(e))
	}
	for _, p := range snap.Projects {
		resp.Projects = append(resp.Projects, toProjectDTO(p))
	}
	for _, e := range snap.Education {
		resp.Education = append(resp.Education, toEducationDTO(e))
	}
	for _, c := range snap.Certifications {
		resp.Certifications = append(resp.Certifications, toCertificationDTO(c))
	}
	for _, t := range snap.Testimonials {
		resp.Testimonials = append(resp.Testimonials, toTestimonialDTO(t))
	}
	for _, s := range snap.Services {
		resp.Services = append(resp.Services, toServiceDTO(s))
	}
	return resp
}

// toResultPayload maps a dispatch result onto its wire shape.
func toResultPayload(result any) any {
	switch v := result.(type) {
	case nil:
		return nil
	case *profile.Profile:
		return v
	case *section.Settings:
		return v
	case *sociallink.SocialLink:
		return toSocialLinkDTO(v)
	case *skill.Skill:
		return toSkillDTO(v)
	case *experience.WorkExperience:
		return toWorkExperienceDTO(v)
	case *project.Project:
		return toProjectDTO(v)
	case *education.Education:
		return toEducationDTO(v)
	case *certification.Certification:
		return toCertificationDTO(v)
	case *testimonial.Testimonial:
		return toTestimonialDTO(v)
	case *service.Service:
		return toServiceDTO(v)
	case *dispatch.TokenResult:
		return v
	case *dispatch.AuthStatus:
		return v
	default:
		return v
	}
}
