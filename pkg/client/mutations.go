package client

import (
	"context"
	"encoding/json"
	"fmt"
)

type entity interface {
	ident() string
}

func (s SocialLink) ident() string     { return s.ID }
func (s Skill) ident() string          { return s.ID }
func (e WorkExperience) ident() string { return e.ID }
func (p Project) ident() string        { return p.ID }
func (e Education) ident() string      { return e.ID }
func (c Certification) ident() string  { return c.ID }
func (t Testimonial) ident() string    { return t.ID }
func (s Service) ident() string        { return s.ID }

func replaceByID[T entity](list []T, item T) []T {
	for i := range list {
		if list[i].ident() == item.ident() {
			list[i] = item
			break
		}
	}
	return list
}

func removeByID[T entity](list []T, id string) []T {
	for i := range list {
		if list[i].ident() == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// doEntity runs an action and decodes the returned entity, which the server
// sends as the whole response body.
func doEntity[T any](c *Client, ctx context.Context, action, id string, data any) (*T, error) {
	raw, err := c.post(ctx, actionRequest{Action: action, ID: id, Data: data})
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("action %s: decode result: %w", action, err)
	}
	return &out, nil
}

// Collection mutations apply the server's result to the local mirror, so the
// caller's own edit is visible without a refetch.

func (c *Client) AddSkill(ctx context.Context, s Skill) (*Skill, error) {
	created, err := doEntity[Skill](c, ctx, "addSkill", "", s)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Skills = append(c.data.Skills, *created)
	}
	c.mu.Unlock()
	return created, nil
}

func (c *Client) UpdateSkill(ctx context.Context, id string, patch any) (*Skill, error) {
	updated, err := doEntity[Skill](c, ctx, "updateSkill", id, patch)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Skills = replaceByID(c.data.Skills, *updated)
	}
	c.mu.Unlock()
	return updated, nil
}

func (c *Client) DeleteSkill(ctx context.Context, id string) error {
	if _, err := c.post(ctx, actionRequest{Action: "deleteSkill", ID: id}); err != nil {
		return err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Skills = removeByID(c.data.Skills, id)
	}
	c.mu.Unlock()
	return nil
}

func (c *Client) AddSocialLink(ctx context.Context, l SocialLink) (*SocialLink, error) {
	created, err := doEntity[SocialLink](c, ctx, "addSocialLink", "", l)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.SocialLinks = append(c.data.SocialLinks, *created)
	}
	c.mu.Unlock()
	return created, nil
}

func (c *Client) UpdateSocialLink(ctx context.Context, id string, patch any) (*SocialLink, error) {
	updated, err := doEntity[SocialLink](c, ctx, "updateSocialLink", id, patch)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.SocialLinks = replaceByID(c.data.SocialLinks, *updated)
	}
	c.mu.Unlock()
	return updated, nil
}

func (c *Client) DeleteSocialLink(ctx context.Context, id string) error {
	if _, err := c.post(ctx, actionRequest{Action: "deleteSocialLink", ID: id}); err != nil {
		return err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.SocialLinks = removeByID(c.data.SocialLinks, id)
	}
	c.mu.Unlock()
	return nil
}

func (c *Client) AddWorkExperience(ctx context.Context, e WorkExperience) (*WorkExperience, error) {
	created, err := doEntity[WorkExperience](c, ctx, "addWorkExperience", "", e)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.WorkExperience = append(c.data.WorkExperience, *created)
	}
	c.mu.Unlock()
	return created, nil
}

func (c *Client) UpdateWorkExperience(ctx context.Context, id string, patch any) (*WorkExperience, error) {
	updated, err := doEntity[WorkExperience](c, ctx, "updateWorkExperience", id, patch)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.WorkExperience = replaceByID(c.data.WorkExperience, *updated)
	}
	c.mu.Unlock()
	return updated, nil
}

func (c *Client) DeleteWorkExperience(ctx context.Context, id string) error {
	if _, err := c.post(ctx, actionRequest{Action: "deleteWorkExperience", ID: id}); err != nil {
		return err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.WorkExperience = removeByID(c.data.WorkExperience, id)
	}
	c.mu.Unlock()
	return nil
}

func (c *Client) AddProject(ctx context.Context, p Project) (*Project, error) {
	created, err := doEntity[Project](c, ctx, "addProject", "", p)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Projects = append(c.data.Projects, *created)
	}
	c.mu.Unlock()
	return created, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, patch any) (*Project, error) {
	updated, err := doEntity[Project](c, ctx, "updateProject", id, patch)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Projects = replaceByID(c.data.Projects, *updated)
	}
	c.mu.Unlock()
	return updated, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	if _, err := c.post(ctx, actionRequest{Action: "deleteProject", ID: id}); err != nil {
		return err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Projects = removeByID(c.data.Projects, id)
	}
	c.mu.Unlock()
	return nil
}

// ReorderProjects persists the new order and mirrors it locally.
func (c *Client) ReorderProjects(ctx context.Context, ids []string) error {
	_, err := c.post(ctx, actionRequest{
		Action: "reorderProjects",
		Data:   map[string][]string{"projectIds": ids},
	})
	if err != nil {
		return err
	}
	c.mu.Lock()
	if c.data != nil {
		byID := make(map[string]Project, len(c.data.Projects))
		for _, p := range c.data.Projects {
			byID[p.ID] = p
		}
		reordered := make([]Project, 0, len(c.data.Projects))
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if p, ok := byID[id]; ok {
				reordered = append(reordered, p)
				seen[id] = true
			}
		}
		for _, p := range c.data.Projects {
			if !seen[p.ID] {
				reordered = append(reordered, p)
			}
		}
		c.data.Projects = reordered
	}
	c.mu.Unlock()
	return nil
}

func (c *Client) AddEducation(ctx context.Context, e Education) (*Education, error) {
	created, err := doEntity[Education](c, ctx, "addEducation", "", e)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Education = append(c.data.Education, *created)
	}
	c.mu.Unlock()
	return created, nil
}

func (c *Client) UpdateEducation(ctx context.Context, id string, patch any) (*Education, error) {
	updated, err := doEntity[Education](c, ctx, "updateEducation", id, patch)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Education = replaceByID(c.data.Education, *updated)
	}
	c.mu.Unlock()
	return updated, nil
}

func (c *Client) DeleteEducation(ctx context.Context, id string) error {
	if _, err := c.post(ctx, actionRequest{Action: "deleteEducation", ID: id}); err != nil {
		return err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Education = removeByID(c.data.Education, id)
	}
	c.mu.Unlock()
	return nil
}

func (c *Client) AddCertification(ctx context.Context, cert Certification) (*Certification, error) {
	created, err := doEntity[Certification](c, ctx, "addCertification", "", cert)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Certifications = append(c.data.Certifications, *created)
	}
	c.mu.Unlock()
	return created, nil
}

func (c *Client) UpdateCertification(ctx context.Context, id string, patch any) (*Certification, error) {
	updated, err := doEntity[Certification](c, ctx, "updateCertification", id, patch)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Certifications = replaceByID(c.data.Certifications, *updated)
	}
	c.mu.Unlock()
	return updated, nil
}

func (c *Client) DeleteCertification(ctx context.Context, id string) error {
	if _, err := c.post(ctx, actionRequest{Action: "deleteCertification", ID: id}); err != nil {
		return err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Certifications = removeByID(c.data.Certifications, id)
	}
	c.mu.Unlock()
	return nil
}

func (c *Client) AddTestimonial(ctx context.Context, t Testimonial) (*Testimonial, error) {
	created, err := doEntity[Testimonial](c, ctx, "addTestimonial", "", t)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Testimonials = append(c.data.Testimonials, *created)
	}
	c.mu.Unlock()
	return created, nil
}

func (c *Client) UpdateTestimonial(ctx context.Context, id string, patch any) (*Testimonial, error) {
	updated, err := doEntity[Testimonial](c, ctx, "updateTestimonial", id, patch)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Testimonials = replaceByID(c.data.Testimonials, *updated)
	}
	c.mu.Unlock()
	return updated, nil
}

func (c *Client) DeleteTestimonial(ctx context.Context, id string) error {
	if _, err := c.post(ctx, actionRequest{Action: "deleteTestimonial", ID: id}); err != nil {
		return err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Testimonials = removeByID(c.data.Testimonials, id)
	}
	c.mu.Unlock()
	return nil
}

func (c *Client) AddService(ctx context.Context, s Service) (*Service, error) {
	created, err := doEntity[Service](c, ctx, "addService", "", s)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Services = append(c.data.Services, *created)
	}
	c.mu.Unlock()
	return created, nil
}

func (c *Client) UpdateService(ctx context.Context, id string, patch any) (*Service, error) {
	updated, err := doEntity[Service](c, ctx, "updateService", id, patch)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Services = replaceByID(c.data.Services, *updated)
	}
	c.mu.Unlock()
	return updated, nil
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	if _, err := c.post(ctx, actionRequest{Action: "deleteService", ID: id}); err != nil {
		return err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Services = removeByID(c.data.Services, id)
	}
	c.mu.Unlock()
	return nil
}

func (c *Client) UpdateProfile(ctx context.Context, p Profile) (*Profile, error) {
	updated, err := doEntity[Profile](c, ctx, "updateProfile", "", p)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.Profile = *updated
	}
	c.mu.Unlock()
	return updated, nil
}

func (c *Client) UpdateSectionSettings(ctx context.Context, s SectionSettings) (*SectionSettings, error) {
	updated, err := doEntity[SectionSettings](c, ctx, "updateSectionSettings", "", s)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.data != nil {
		c.data.SectionSettings = *updated
	}
	c.mu.Unlock()
	return updated, nil
}

// UpdateAdminPassword rotates the stored credential. Requires a logged-in
// client.
func (c *Client) UpdateAdminPassword(ctx context.Context, newPassword string) error {
	_, err := c.post(ctx, actionRequest{
		Action: "updateAdminPassword",
		Data:   map[string]string{"newPassword": newPassword},
	})
	return err
}
