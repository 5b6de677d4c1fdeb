package memory

import (
	"context"
	"sort"
	"strconv"

	"github.com/wsikandar/portfolio-cms/internal/domain/certification"
	"github.com/wsikandar/portfolio-cms/internal/domain/education"
	"github.com/wsikandar/portfolio-cms/internal/domain/experience"
	"github.com/wsikandar/portfolio-cms/internal/domain/project"
	"github.com/wsikandar/portfolio-cms/internal/domain/service"
	"github.com/wsikandar/portfolio-cms/internal/domain/skill"
	"github.com/wsikandar/portfolio-cms/internal/domain/sociallink"
	"github.com/wsikandar/portfolio-cms/internal/domain/testimonial"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
)

func cloneStrings(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Social links

type SocialLinkRepo struct {
	store *Store
	Err   error
}

func cloneSocialLink(l *sociallink.SocialLink) *sociallink.SocialLink {
	cp := *l
	return &cp
}

func (r *SocialLinkRepo) List(ctx context.Context) ([]*sociallink.SocialLink, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]*sociallink.SocialLink, 0, len(r.store.socialLinks))
	for _, l := range r.store.socialLinks {
		out = append(out, cloneSocialLink(l))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *SocialLinkRepo) Create(ctx context.Context, l *sociallink.SocialLink) (*sociallink.SocialLink, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if err := l.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := cloneSocialLink(l)
	cp.ID = r.store.id()
	cp.ProfileID = ownerProfileID
	r.store.socialLinks = append(r.store.socialLinks, cp)
	*l = *cp
	return cloneSocialLink(cp), nil
}

func (r *SocialLinkRepo) Update(ctx context.Context, id int64, patch sociallink.Patch) (*sociallink.SocialLink, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if patch.Platform != nil && *patch.Platform == "" {
		return nil, apperror.NewInvalidInput(sociallink.ErrPlatformRequired.Error(), sociallink.ErrPlatformRequired)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, l := range r.store.socialLinks {
		if l.ID != id {
			continue
		}
		if patch.Platform != nil {
			l.Platform = *patch.Platform
		}
		if patch.URL != nil {
			l.URL = *patch.URL
		}
		if patch.Icon != nil {
			l.Icon = *patch.Icon
		}
		if patch.Enabled != nil {
			l.Enabled = *patch.Enabled
		}
		return cloneSocialLink(l), nil
	}
	return nil, apperror.NewNotFound("social link", strconv.FormatInt(id, 10))
}

func (r *SocialLinkRepo) Delete(ctx context.Context, id int64) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, l := range r.store.socialLinks {
		if l.ID == id {
			r.store.socialLinks = append(r.store.socialLinks[:i], r.store.socialLinks[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("social link", strconv.FormatInt(id, 10))
}

// Skills

type SkillRepo struct {
	store *Store
	Err   error
}

func cloneSkill(s *skill.Skill) *skill.Skill {
	cp := *s
	return &cp
}

func (r *SkillRepo) List(ctx context.Context) ([]*skill.Skill, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]*skill.Skill, 0, len(r.store.skills))
	for _, s := range r.store.skills {
		out = append(out, cloneSkill(s))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *SkillRepo) Create(ctx context.Context, s *skill.Skill) (*skill.Skill, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := cloneSkill(s)
	cp.ID = r.store.id()
	cp.ProfileID = ownerProfileID
	r.store.skills = append(r.store.skills, cp)
	*s = *cp
	return cloneSkill(cp), nil
}

func (r *SkillRepo) Update(ctx context.Context, id int64, patch skill.Patch) (*skill.Skill, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if err := patch.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, s := range r.store.skills {
		if s.ID != id {
			continue
		}
		if patch.Name != nil {
			s.Name = *patch.Name
		}
		if patch.Category != nil {
			s.Category = *patch.Category
		}
		if patch.Level != nil {
			s.Level = *patch.Level
		}
		if patch.Enabled != nil {
			s.Enabled = *patch.Enabled
		}
		return cloneSkill(s), nil
	}
	return nil, apperror.NewNotFound("skill", strconv.FormatInt(id, 10))
}

func (r *SkillRepo) Delete(ctx context.Context, id int64) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, s := range r.store.skills {
		if s.ID == id {
			r.store.skills = append(r.store.skills[:i], r.store.skills[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("skill", strconv.FormatInt(id, 10))
}

// Work experience

type ExperienceRepo struct {
	store *Store
	Err   error
}

func cloneExperience(e *experience.WorkExperience) *experience.WorkExperience {
	cp := *e
	cp.Achievements = cloneStrings(e.Achievements)
	cp.Technologies = cloneStrings(e.Technologies)
	cp.Links = make([]experience.Link, len(e.Links))
	copy(cp.Links, e.Links)
	return &cp
}

func (r *ExperienceRepo) List(ctx context.Context) ([]*experience.WorkExperience, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]*experience.WorkExperience, 0, len(r.store.experience))
	for _, e := range r.store.experience {
		out = append(out, cloneExperience(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate > out[j].StartDate })
	return out, nil
}

func (r *ExperienceRepo) Create(ctx context.Context, e *experience.WorkExperience) (*experience.WorkExperience, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := cloneExperience(e)
	cp.ID = r.store.id()
	cp.ProfileID = ownerProfileID
	r.store.experience = append(r.store.experience, cp)
	*e = *cloneExperience(cp)
	return cloneExperience(cp), nil
}

func (r *ExperienceRepo) Update(ctx context.Context, id int64, patch experience.Patch) (*experience.WorkExperience, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, apperror.NewInvalidInput(experience.ErrTitleRequired.Error(), experience.ErrTitleRequired)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, e := range r.store.experience {
		if e.ID != id {
			continue
		}
		if patch.Title != nil {
			e.Title = *patch.Title
		}
		if patch.Company != nil {
			e.Company = *patch.Company
		}
		if patch.Location != nil {
			e.Location = *patch.Location
		}
		if patch.StartDate != nil {
			e.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			e.EndDate = *patch.EndDate
		}
		if patch.Current != nil {
			e.Current = *patch.Current
		}
		if patch.Description != nil {
			e.Description = *patch.Description
		}
		if patch.Achievements != nil {
			e.Achievements = cloneStrings(*patch.Achievements)
		}
		if patch.Technologies != nil {
			e.Technologies = cloneStrings(*patch.Technologies)
		}
		if patch.Links != nil {
			e.Links = make([]experience.Link, len(*patch.Links))
			copy(e.Links, *patch.Links)
		}
		if patch.Enabled != nil {
			e.Enabled = *patch.Enabled
		}
		return cloneExperience(e), nil
	}
	return nil, apperror.NewNotFound("work experience", strconv.FormatInt(id, 10))
}

func (r *ExperienceRepo) Delete(ctx context.Context, id int64) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, e := range r.store.experience {
		if e.ID == id {
			r.store.experience = append(r.store.experience[:i], r.store.experience[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("work experience", strconv.FormatInt(id, 10))
}

// Projects

type ProjectRepo struct {
	store *Store
	Err   error
}

func cloneProject(p *project.Project) *project.Project {
	cp := *p
	cp.Technologies = cloneStrings(p.Technologies)
	return &cp
}

func (r *ProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]*project.Project, 0, len(r.store.projects))
	for _, p := range r.store.projects {
		out = append(out, cloneProject(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].StartDate > out[j].StartDate
	})
	return out, nil
}

func (r *ProjectRepo) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := cloneProject(p)
	cp.ID = r.store.id()
	cp.ProfileID = ownerProfileID
	maxOrder := 0
	for _, existing := range r.store.projects {
		if existing.SortOrder > maxOrder {
			maxOrder = existing.SortOrder
		}
	}
	cp.SortOrder = maxOrder + 1
	r.store.projects = append(r.store.projects, cp)
	*p = *cloneProject(cp)
	return cloneProject(cp), nil
}

func (r *ProjectRepo) Update(ctx context.Context, id int64, patch project.Patch) (*project.Project, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, apperror.NewInvalidInput(project.ErrTitleRequired.Error(), project.ErrTitleRequired)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.projects {
		if p.ID != id {
			continue
		}
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.LongDescription != nil {
			p.LongDescription = *patch.LongDescription
		}
		if patch.Technologies != nil {
			p.Technologies = cloneStrings(*patch.Technologies)
		}
		if patch.ImageURL != nil {
			p.ImageURL = *patch.ImageURL
		}
		if patch.VideoURL != nil {
			p.VideoURL = *patch.VideoURL
		}
		if patch.GithubURL != nil {
			p.GithubURL = *patch.GithubURL
		}
		if patch.LiveURL != nil {
			p.LiveURL = *patch.LiveURL
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Featured != nil {
			p.Featured = *patch.Featured
		}
		if patch.StartDate != nil {
			p.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			p.EndDate = *patch.EndDate
		}
		if patch.Enabled != nil {
			p.Enabled = *patch.Enabled
		}
		return cloneProject(p), nil
	}
	return nil, apperror.NewNotFound("project", strconv.FormatInt(id, 10))
}

func (r *ProjectRepo) Delete(ctx context.Context, id int64) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, p := range r.store.projects {
		if p.ID == id {
			r.store.projects = append(r.store.projects[:i], r.store.projects[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("project", strconv.FormatInt(id, 10))
}

func (r *ProjectRepo) Reorder(ctx context.Context, ids []int64) error {
	if r.Err != nil {
		return r.Err
	}
	if len(ids) == 0 {
		return apperror.NewInvalidInput("reorder requires at least one project id", nil)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	byID := make(map[int64]*project.Project, len(r.store.projects))
	for _, p := range r.store.projects {
		byID[p.ID] = p
	}
	for pos, id := range ids {
		p, ok := byID[id]
		if !ok {
			return apperror.NewNotFound("project", strconv.FormatInt(id, 10))
		}
		p.SortOrder = pos + 1
	}
	return nil
}

// Education

type EducationRepo struct {
	store *Store
	Err   error
}

func cloneEducation(e *education.Education) *education.Education {
	cp := *e
	cp.Achievements = cloneStrings(e.Achievements)
	return &cp
}

func (r *EducationRepo) List(ctx context.Context) ([]*education.Education, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]*education.Education, 0, len(r.store.education))
	for _, e := range r.store.education {
		out = append(out, cloneEducation(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate > out[j].StartDate })
	return out, nil
}

func (r *EducationRepo) Create(ctx context.Context, e *education.Education) (*education.Education, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := cloneEducation(e)
	cp.ID = r.store.id()
	cp.ProfileID = ownerProfileID
	r.store.education = append(r.store.education, cp)
	*e = *cloneEducation(cp)
	return cloneEducation(cp), nil
}

func (r *EducationRepo) Update(ctx context.Context, id int64, patch education.Patch) (*education.Education, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if patch.Degree != nil && *patch.Degree == "" {
		return nil, apperror.NewInvalidInput(education.ErrDegreeRequired.Error(), education.ErrDegreeRequired)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, e := range r.store.education {
		if e.ID != id {
			continue
		}
		if patch.Degree != nil {
			e.Degree = *patch.Degree
		}
		if patch.Institution != nil {
			e.Institution = *patch.Institution
		}
		if patch.Location != nil {
			e.Location = *patch.Location
		}
		if patch.StartDate != nil {
			e.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			e.EndDate = *patch.EndDate
		}
		if patch.Description != nil {
			e.Description = *patch.Description
		}
		if patch.Achievements != nil {
			e.Achievements = cloneStrings(*patch.Achievements)
		}
		if patch.Enabled != nil {
			e.Enabled = *patch.Enabled
		}
		return cloneEducation(e), nil
	}
	return nil, apperror.NewNotFound("education", strconv.FormatInt(id, 10))
}

func (r *EducationRepo) Delete(ctx context.Context, id int64) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, e := range r.store.education {
		if e.ID == id {
			r.store.education = append(r.store.education[:i], r.store.education[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("education", strconv.FormatInt(id, 10))
}

// Certifications

type CertificationRepo struct {
	store *Store
	Err   error
}

func cloneCertification(c *certification.Certification) *certification.Certification {
	cp := *c
	return &cp
}

func (r *CertificationRepo) List(ctx context.Context) ([]*certification.Certification, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]*certification.Certification, 0, len(r.store.certifications))
	for _, c := range r.store.certifications {
		out = append(out, cloneCertification(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *CertificationRepo) Create(ctx context.Context, c *certification.Certification) (*certification.Certification, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if err := c.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := cloneCertification(c)
	cp.ID = r.store.id()
	cp.ProfileID = ownerProfileID
	r.store.certifications = append(r.store.certifications, cp)
	*c = *cp
	return cloneCertification(cp), nil
}

func (r *CertificationRepo) Update(ctx context.Context, id int64, patch certification.Patch) (*certification.Certification, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if patch.Name != nil && *patch.Name == "" {
		return nil, apperror.NewInvalidInput(certification.ErrNameRequired.Error(), certification.ErrNameRequired)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.certifications {
		if c.ID != id {
			continue
		}
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Issuer != nil {
			c.Issuer = *patch.Issuer
		}
		if patch.Date != nil {
			c.Date = *patch.Date
		}
		if patch.URL != nil {
			c.URL = *patch.URL
		}
		if patch.CredentialID != nil {
			c.CredentialID = *patch.CredentialID
		}
		if patch.Enabled != nil {
			c.Enabled = *patch.Enabled
		}
		return cloneCertification(c), nil
	}
	return nil, apperror.NewNotFound("certification", strconv.FormatInt(id, 10))
}

func (r *CertificationRepo) Delete(ctx context.Context, id int64) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, c := range r.store.certifications {
		if c.ID == id {
			r.store.certifications = append(r.store.certifications[:i], r.store.certifications[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("certification", strconv.FormatInt(id, 10))
}

// Testimonials

type TestimonialRepo struct {
	store *Store
	Err   error
}

func cloneTestimonial(t *testimonial.Testimonial) *testimonial.Testimonial {
	cp := *t
	return &cp
}

func (r *TestimonialRepo) List(ctx context.Context) ([]*testimonial.Testimonial, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]*testimonial.Testimonial, 0, len(r.store.testimonials))
	for _, t := range r.store.testimonials {
		out = append(out, cloneTestimonial(t))
	}
	// Insertion order stands in for created_at DESC.
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *TestimonialRepo) Create(ctx context.Context, t *testimonial.Testimonial) (*testimonial.Testimonial, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if err := t.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := cloneTestimonial(t)
	cp.ID = r.store.id()
	cp.ProfileID = ownerProfileID
	r.store.testimonials = append(r.store.testimonials, cp)
	*t = *cp
	return cloneTestimonial(cp), nil
}

func (r *TestimonialRepo) Update(ctx context.Context, id int64, patch testimonial.Patch) (*testimonial.Testimonial, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if err := patch.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, t := range r.store.testimonials {
		if t.ID != id {
			continue
		}
		if patch.Name != nil {
			t.Name = *patch.Name
		}
		if patch.Role != nil {
			t.Role = *patch.Role
		}
		if patch.Company != nil {
			t.Company = *patch.Company
		}
		if patch.Content != nil {
			t.Content = *patch.Content
		}
		if patch.ImageURL != nil {
			t.ImageURL = *patch.ImageURL
		}
		if patch.Rating != nil {
			t.Rating = *patch.Rating
		}
		if patch.Enabled != nil {
			t.Enabled = *patch.Enabled
		}
		return cloneTestimonial(t), nil
	}
	return nil, apperror.NewNotFound("testimonial", strconv.FormatInt(id, 10))
}

func (r *TestimonialRepo) Delete(ctx context.Context, id int64) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, t := range r.store.testimonials {
		if t.ID == id {
			r.store.testimonials = append(r.store.testimonials[:i], r.store.testimonials[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("testimonial", strconv.FormatInt(id, 10))
}

// Services

type ServiceRepo struct {
	store *Store
	Err   error
}

func cloneService(s *service.Service) *service.Service {
	cp := *s
	cp.Features = cloneStrings(s.Features)
	return &cp
}

func (r *ServiceRepo) List(ctx context.Context) ([]*service.Service, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]*service.Service, 0, len(r.store.services))
	for _, s := range r.store.services {
		out = append(out, cloneService(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ServiceRepo) Create(ctx context.Context, s *service.Service) (*service.Service, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := cloneService(s)
	cp.ID = r.store.id()
	cp.ProfileID = ownerProfileID
	r.store.services = append(r.store.services, cp)
	*s = *cloneService(cp)
	return cloneService(cp), nil
}

func (r *ServiceRepo) Update(ctx context.Context, id int64, patch service.Patch) (*service.Service, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, apperror.NewInvalidInput(service.ErrTitleRequired.Error(), service.ErrTitleRequired)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, s := range r.store.services {
		if s.ID != id {
			continue
		}
		if patch.Title != nil {
			s.Title = *patch.Title
		}
		if patch.Description != nil {
			s.Description = *patch.Description
		}
		if patch.Icon != nil {
			s.Icon = *patch.Icon
		}
		if patch.Features != nil {
			s.Features = cloneStrings(*patch.Features)
		}
		if patch.Enabled != nil {
			s.Enabled = *patch.Enabled
		}
		return cloneService(s), nil
	}
	return nil, apperror.NewNotFound("service", strconv.FormatInt(id, 10))
}

func (r *ServiceRepo) Delete(ctx context.Context, id int64) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, s := range r.store.services {
		if s.ID == id {
			r.store.services = append(r.store.services[:i], r.store.services[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("service", strconv.FormatInt(id, 10))
}
