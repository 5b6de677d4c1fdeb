package dispatch

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/wsikandar/portfolio-cms/adapters/event"
	authUC "github.com/wsikandar/portfolio-cms/internal/application/usecase/auth"
	"github.com/wsikandar/portfolio-cms/internal/application/usecase/content"
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
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

// Request is the single write envelope: which action, an optional target id,
// and an action-specific payload.
type Request struct {
	Action string          `json:"action"`
	ID     string          `json:"id,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Identity carries what the transport layer established about the caller.
type Identity struct {
	Authenticated bool
}

type AuthStatus struct {
	Authenticated bool `json:"authenticated"`
}

type TokenResult struct {
	Token string `json:"token"`
}

// Every action not listed here requires an authenticated caller.
var publicActions = map[string]bool{
	"login":       true,
	"checkAuth":   true,
	"updateTheme": true,
}

type Repositories struct {
	Profiles       profile.Repository
	SocialLinks    sociallink.Repository
	Skills         skill.Repository
	Experience     experience.Repository
	Projects       project.Repository
	Education      education.Repository
	Certifications certification.Repository
	Testimonials   testimonial.Repository
	Services       service.Repository
	Sections       section.Repository
	Credentials    admin.Repository
}

type Dispatcher struct {
	repos    Repositories
	login    *authUC.LoginUseCase
	rotate   *authUC.RotatePasswordUseCase
	cache    content.SnapshotCache
	producer *event.KafkaProducerClient
	logger   logger.Logger
}

func NewDispatcher(
	repos Repositories,
	login *authUC.LoginUseCase,
	rotate *authUC.RotatePasswordUseCase,
	cache content.SnapshotCache,
	producer *event.KafkaProducerClient,
	log logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		repos:    repos,
		login:    login,
		rotate:   rotate,
		cache:    cache,
		producer: producer,
		logger:   log,
	}
}

// Dispatch authorizes and executes one action. Authorization passes when the
// transport already authenticated the caller (bearer token) or when the
// payload carries the admin password inline.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request, ident Identity) (any, error) {
	if req.Action == "" {
		return nil, apperror.NewInvalidInput("action is required", nil)
	}

	authed := ident.Authenticated
	if !authed {
		ok, err := d.login.VerifyPassword(ctx, inlinePassword(req.Data))
		if err != nil {
			return nil, err
		}
		authed = ok
	}

	if !publicActions[req.Action] && !authed {
		return nil, apperror.NewUnauthorized("authentication required", nil)
	}

	switch req.Action {
	case "checkAuth":
		return &AuthStatus{Authenticated: authed}, nil
	case "login":
		return d.handleLogin(ctx, req)
	case "updateAdminPassword":
		return d.handleRotatePassword(ctx, req)
	case "updateTheme":
		return d.handleUpdateTheme(ctx, req)
	case "updateProfile":
		return d.handleUpdateProfile(ctx, req)
	case "updateSectionSettings":
		return d.handleUpdateSections(ctx, req)
	case "addSocialLink", "updateSocialLink", "deleteSocialLink":
		return d.handleSocialLink(ctx, req)
	case "addSkill", "updateSkill", "deleteSkill":
		return d.handleSkill(ctx, req)
	case "addWorkExperience", "updateWorkExperience", "deleteWorkExperience":
		return d.handleExperience(ctx, req)
	case "addProject", "updateProject", "deleteProject":
		return d.handleProject(ctx, req)
	case "reorderProjects":
		return d.handleReorderProjects(ctx, req)
	case "addEducation", "updateEducation", "deleteEducation":
		return d.handleEducation(ctx, req)
	case "addCertification", "updateCertification", "deleteCertification":
		return d.handleCertification(ctx, req)
	case "addTestimonial", "updateTestimonial", "deleteTestimonial":
		return d.handleTestimonial(ctx, req)
	case "addService", "updateService", "deleteService":
		return d.handleService(ctx, req)
	default:
		return nil, apperror.NewInvalidAction(req.Action)
	}
}

// inlinePassword pulls the adminPassword field out of an action payload
// without disturbing the rest of it.
func inlinePassword(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var envelope struct {
		AdminPassword string `json:"adminPassword"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ""
	}
	return envelope.AdminPassword
}

// afterWrite runs once a mutation committed: the cached snapshot is stale and
// downstream consumers get notified.
func (d *Dispatcher) afterWrite(ctx context.Context, action, resource string, id int64) {
	if d.cache != nil {
		d.cache.Invalidate(ctx)
	}
	d.producer.PublishContentEvent(ctx, event.ContentEventPayload{
		Action:     action,
		Resource:   resource,
		ResourceID: id,
		OccurredAt: time.Now().UTC(),
	})
	d.logger.Info("content updated", zap.String("action", action), zap.Int64("id", id))
}

func decode(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return apperror.NewInvalidInput("request data is required", nil)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return apperror.NewInvalidInput("malformed request data", err)
	}
	return nil
}

// decodePatch tolerates a missing body: an empty patch is a valid no-op
// update that just returns the current row.
func decodePatch(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return apperror.NewInvalidInput("malformed request data", err)
	}
	return nil
}

func parseID(raw string) (int64, error) {
	if raw == "" {
		return 0, apperror.NewInvalidInput("id is required", nil)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.NewInvalidInput("id must be numeric", err)
	}
	return id, nil
}
