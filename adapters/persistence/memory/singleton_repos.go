package memory

import (
	"context"

	"github.com/wsikandar/portfolio-cms/internal/domain/admin"
	"github.com/wsikandar/portfolio-cms/internal/domain/profile"
	"github.com/wsikandar/portfolio-cms/internal/domain/section"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
)

// ProfileRepo implements profile.Repository. Set Err to make every call fail,
// which is how tests exercise degraded reads.
type ProfileRepo struct {
	store *Store
	Err   error
}

func cloneProfile(p *profile.Profile) *profile.Profile {
	cp := *p
	return &cp
}

func (r *ProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.profile == nil {
		return nil, nil
	}
	return cloneProfile(r.store.profile), nil
}

func (r *ProfileRepo) Upsert(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := cloneProfile(p)
	cp.ID = ownerProfileID
	if cp.Theme == "" {
		cp.Theme = profile.ThemeProfessional
	}
	r.store.profile = cp
	return cloneProfile(cp), nil
}

func (r *ProfileRepo) Update(ctx context.Context, patch profile.Patch) (*profile.Profile, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if err := patch.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.profile == nil {
		p := profile.Default()
		p.ID = ownerProfileID
		r.store.profile = p
	}
	p := r.store.profile
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Subtitle != nil {
		p.Subtitle = *patch.Subtitle
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.ShortBio != nil {
		p.ShortBio = *patch.ShortBio
	}
	if patch.ProfileImage != nil {
		p.ProfileImage = *patch.ProfileImage
	}
	if patch.ResumeURL != nil {
		p.ResumeURL = *patch.ResumeURL
	}
	if patch.AvailableForHire != nil {
		p.AvailableForHire = *patch.AvailableForHire
	}
	if patch.YearsOfExperience != nil {
		p.YearsOfExperience = *patch.YearsOfExperience
	}
	if patch.ProjectsCompleted != nil {
		p.ProjectsCompleted = *patch.ProjectsCompleted
	}
	if patch.HappyClients != nil {
		p.HappyClients = *patch.HappyClients
	}
	if patch.Theme != nil {
		p.Theme = *patch.Theme
	}
	return cloneProfile(p), nil
}

func (r *ProfileRepo) SetTheme(ctx context.Context, theme profile.Theme) (*profile.Profile, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if !theme.Valid() {
		return nil, apperror.NewInvalidInput(profile.ErrInvalidTheme.Error(), profile.ErrInvalidTheme)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.profile == nil {
		p := profile.Default()
		p.ID = ownerProfileID
		r.store.profile = p
	}
	r.store.profile.Theme = theme
	return cloneProfile(r.store.profile), nil
}

type SectionRepo struct {
	store *Store
	Err   error
}

func cloneSection(s *section.Settings) *section.Settings {
	cp := *s
	return &cp
}

func (r *SectionRepo) Get(ctx context.Context) (*section.Settings, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.sections == nil {
		return nil, nil
	}
	return cloneSection(r.store.sections), nil
}

func (r *SectionRepo) Upsert(ctx context.Context, s *section.Settings) (*section.Settings, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cp := cloneSection(s)
	cp.ProfileID = ownerProfileID
	if r.store.sections != nil {
		cp.ID = r.store.sections.ID
	} else {
		cp.ID = r.store.id()
	}
	r.store.sections = cp
	return cloneSection(cp), nil
}

func (r *SectionRepo) Update(ctx context.Context, patch section.Patch) (*section.Settings, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.sections == nil {
		s := section.Default()
		s.ID = r.store.id()
		s.ProfileID = ownerProfileID
		r.store.sections = s
	}
	s := r.store.sections
	apply := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	apply(&s.Hero, patch.Hero)
	apply(&s.About, patch.About)
	apply(&s.Skills, patch.Skills)
	apply(&s.Experience, patch.Experience)
	apply(&s.Projects, patch.Projects)
	apply(&s.PersonalProjects, patch.PersonalProjects)
	apply(&s.Education, patch.Education)
	apply(&s.Certifications, patch.Certifications)
	apply(&s.Services, patch.Services)
	apply(&s.Testimonials, patch.Testimonials)
	apply(&s.Achievements, patch.Achievements)
	apply(&s.Languages, patch.Languages)
	apply(&s.Interests, patch.Interests)
	apply(&s.Publications, patch.Publications)
	apply(&s.Awards, patch.Awards)
	apply(&s.Volunteer, patch.Volunteer)
	apply(&s.Contact, patch.Contact)
	apply(&s.Timeline, patch.Timeline)
	return cloneSection(s), nil
}

type AdminRepo struct {
	store *Store
	Err   error
}

func (r *AdminRepo) Get(ctx context.Context) (*admin.Credential, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.credential == nil {
		return nil, nil
	}
	cp := *r.store.credential
	return &cp, nil
}

func (r *AdminRepo) Upsert(ctx context.Context, passwordHash string) (*admin.Credential, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if passwordHash == "" {
		return nil, apperror.NewInvalidInput("password hash must not be empty", nil)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.credential == nil {
		r.store.credential = &admin.Credential{ID: r.store.id(), ProfileID: ownerProfileID}
	}
	r.store.credential.PasswordHash = passwordHash
	cp := *r.store.credential
	return &cp, nil
}
