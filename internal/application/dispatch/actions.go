package dispatch

import (
	"context"
	"strings"

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

func (d *Dispatcher) handleLogin(ctx context.Context, req Request) (any, error) {
	var payload struct {
		Password string `json:"password"`
	}
	if err := decode(req.Data, &payload); err != nil {
		return nil, err
	}
	out, err := d.login.Execute(ctx, payload.Password)
	if err != nil {
		return nil, err
	}
	return &TokenResult{Token: out.AccessToken}, nil
}

func (d *Dispatcher) handleRotatePassword(ctx context.Context, req Request) (any, error) {
	var payload struct {
		NewPassword string `json:"newPassword"`
	}
	if err := decode(req.Data, &payload); err != nil {
		return nil, err
	}
	if err := d.rotate.Execute(ctx, payload.NewPassword); err != nil {
		return nil, err
	}
	return nil, nil
}

func (d *Dispatcher) handleUpdateTheme(ctx context.Context, req Request) (any, error) {
	var payload struct {
		Theme profile.Theme `json:"theme"`
	}
	if err := decode(req.Data, &payload); err != nil {
		return nil, err
	}
	p, err := d.repos.Profiles.SetTheme(ctx, payload.Theme)
	if err != nil {
		return nil, err
	}
	d.afterWrite(ctx, req.Action, "profile", p.ID)
	return p, nil
}

func (d *Dispatcher) handleUpdateProfile(ctx context.Context, req Request) (any, error) {
	var patch profile.Patch
	if err := decodePatch(req.Data, &patch); err != nil {
		return nil, err
	}
	updated, err := d.repos.Profiles.Update(ctx, patch)
	if err != nil {
		return nil, err
	}
	d.afterWrite(ctx, req.Action, "profile", updated.ID)
	return updated, nil
}

func (d *Dispatcher) handleUpdateSections(ctx context.Context, req Request) (any, error) {
	var patch section.Patch
	if err := decodePatch(req.Data, &patch); err != nil {
		return nil, err
	}
	updated, err := d.repos.Sections.Update(ctx, patch)
	if err != nil {
		return nil, err
	}
	d.afterWrite(ctx, req.Action, "sectionSettings", updated.ID)
	return updated, nil
}

func (d *Dispatcher) handleSocialLink(ctx context.Context, req Request) (any, error) {
	switch {
	case strings.HasPrefix(req.Action, "add"):
		l := sociallink.SocialLink{Enabled: true}
		if err := decode(req.Data, &l); err != nil {
			return nil, err
		}
		created, err := d.repos.SocialLinks.Create(ctx, &l)
		if err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "socialLink", created.ID)
		return created, nil
	case strings.HasPrefix(req.Action, "update"):
		id, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		var patch sociallink.Patch
		if err := decodePatch(req.Data, &patch); err != nil {
			return nil, err
		}
		updated, err := d.repos.SocialLinks.Update(ctx, id, patch)
		if err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "socialLink", id)
		return updated, nil
	default:
		id, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		if err := d.repos.SocialLinks.Delete(ctx, id); err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "socialLink", id)
		return nil, nil
	}
}

func (d *Dispatcher) handleSkill(ctx context.Context, req Request) (any, error) {
	switch {
	case strings.HasPrefix(req.Action, "add"):
		s := skill.Skill{Enabled: true}
		if err := decode(req.Data, &s); err != nil {
			return nil, err
		}
		created, err := d.repos.Skills.Create(ctx, &s)
		if err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "skill", created.ID)
		return created, nil
	case strings.HasPrefix(req.Action, "update"):
		id, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		var patch skill.Patch
		if err := decodePatch(req.Data, &patch); err != nil {
			return nil, err
		}
		updated, err := d.repos.Skills.Update(ctx, id, patch)
		if err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "skill", id)
		return updated, nil
	default:
		id, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		if err := d.repos.Skills.Delete(ctx, id); err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "skill", id)
		return nil, nil
	}
}

func (d *Dispatcher) handleExperience(ctx context.Context, req Request) (any, error) {
	switch {
	case strings.HasPrefix(req.Action, "add"):
		e := experience.WorkExperience{Enabled: true}
		if err := decode(req.Data, &e); err != nil {
			return nil, err
		}
		created, err := d.repos.Experience.Create(ctx, &e)
		if err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "workExperience", created.ID)
		return created, nil
	case strings.HasPrefix(req.Action, "update"):
		id, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		var patch experience.Patch
		if err := decodePatch(req.Data, &patch); err != nil {
			return nil, err
		}
		updated, err := d.repos.Experience.Update(ctx, id, patch)
		if err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "workExperience", id)
		return updated, nil
	default:
		id, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		if err := d.repos.Experience.Delete(ctx, id); err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "workExperience", id)
		return nil, nil
	}
}

func (d *Dispatcher) handleProject(ctx context.Context, req Request) (any, error) {
	switch {
	case strings.HasPrefix(req.Action, "add"):
		p := project.Project{Enabled: true}
		if err := decode(req.Data, &p); err != nil {
			return nil, err
		}
		created, err := d.repos.Projects.Create(ctx, &p)
		if err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "project", created.ID)
		return created, nil
	case strings.HasPrefix(req.Action, "update"):
		id, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		var patch project.Patch
		if err := decodePatch(req.Data, &patch); err != nil {
			return nil, err
		}
		updated, err := d.repos.Projects.Update(ctx, id, patch)
		if err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "project", id)
		return updated, nil
	default:
		id, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		if err := d.repos.Projects.Delete(ctx, id); err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "project", id)
		return nil, nil
	}
}

func (d *Dispatcher) handleReorderProjects(ctx context.Context, req Request) (any, error) {
	var payload struct {
		ProjectIDs []string `json:"projectIds"`
	}
	if err := decode(req.Data, &payload); err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(payload.ProjectIDs))
	for _, raw := range payload.ProjectIDs {
		id, err := parseID(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := d.repos.Projects.Reorder(ctx, ids); err != nil {
		return nil, err
	}
	d.afterWrite(ctx, req.Action, "project", 0)
	return nil, nil
}

func (d *Dispatcher) handleEducation(ctx context.Context, req Request) (any, error) {
	switch {
	case strings.HasPrefix(req.Action, "add"):
		e := education.Education{Enabled: true}
		if err := decode(req.Data, &e); err != nil {
			return nil, err
		}
		created, err := d.repos.Education.Create(ctx, &e)
		if err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "education", created.ID)
		return created, nil
	case strings.HasPrefix(req.Action, "update"):
		id, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		var patch education.Patch
		if err := decodePatch(req.Data, &patch); err != nil {
			return nil, err
		}
		updated, err := d.repos.Education.Update(ctx, id, patch)
		if err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "education", id)
		return updated, nil
	default:
		id, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		if err := d.repos.Education.Delete(ctx, id); err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "education", id)
		return nil, nil
	}
}

func (d *Dispatcher) handleCertification(ctx context.Context, req Request) (any, error) {
	switch {
	case strings.HasPrefix(req.Action, "add"):
		c := certification.Certification{Enabled: true}
		if err := decode(req.Data, &c); err != nil {
			return nil, err
		}
		created, err := d.repos.Certifications.Create(ctx, &c)
		if err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "certification", created.ID)
		return created, nil
	case strings.HasPrefix(req.Action, "update"):
		id, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		var patch certification.Patch
		if err := decodePatch(req.Data, &patch); err != nil {
			return nil, err
		}
		updated, err := d.repos.Certifications.Update(ctx, id, patch)
		if err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "certification", id)
		return updated, nil
	default:
		id, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		if err := d.repos.Certifications.Delete(ctx, id); err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "certification", id)
		return nil, nil
	}
}

func (d *Dispatcher) handleTestimonial(ctx context.Context, req Request) (any, error) {
	switch {
	case strings.HasPrefix(req.Action, "add"):
		t := testimonial.Testimonial{Enabled: true, Rating: 5}
		if err := decode(req.Data, &t); err != nil {
			return nil, err
		}
		created, err := d.repos.Testimonials.Create(ctx, &t)
		if err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "testimonial", created.ID)
		return created, nil
	case strings.HasPrefix(req.Action, "update"):
		id, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		var patch testimonial.Patch
		if err := decodePatch(req.Data, &patch); err != nil {
			return nil, err
		}
		updated, err := d.repos.Testimonials.Update(ctx, id, patch)
		if err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "testimonial", id)
		return updated, nil
	default:
		id, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		if err := d.repos.Testimonials.Delete(ctx, id); err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "testimonial", id)
		return nil, nil
	}
}

func (d *Dispatcher) handleService(ctx context.Context, req Request) (any, error) {
	switch {
	case strings.HasPrefix(req.Action, "add"):
		s := service.Service{Enabled: true}
		if err := decode(req.Data, &s); err != nil {
			return nil, err
		}
		created, err := d.repos.Services.Create(ctx, &s)
		if err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "service", created.ID)
		return created, nil
	case strings.HasPrefix(req.Action, "update"):
		id, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		var patch service.Patch
		if err := decodePatch(req.Data, &patch); err != nil {
			return nil, err
		}
		updated, err := d.repos.Services.Update(ctx, id, patch)
		if err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "service", id)
		return updated, nil
	default:
		id, err := parseID(req.ID)
		if err != nil {
			return nil, err
		}
		if err := d.repos.Services.Delete(ctx, id); err != nil {
			return nil, err
		}
		d.afterWrite(ctx, req.Action, "service", id)
		return nil, nil
	}
}
