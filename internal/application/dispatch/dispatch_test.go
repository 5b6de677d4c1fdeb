package dispatch

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsikandar/portfolio-cms/adapters/persistence/memory"
	authUC "github.com/wsikandar/portfolio-cms/internal/application/usecase/auth"
	"github.com/wsikandar/portfolio-cms/internal/domain/experience"
	"github.com/wsikandar/portfolio-cms/internal/domain/profile"
	"github.com/wsikandar/portfolio-cms/internal/domain/project"
	"github.com/wsikandar/portfolio-cms/internal/domain/section"
	"github.com/wsikandar/portfolio-cms/internal/domain/skill"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/auth"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

const testAdminPassword = "correct-horse-battery"

func newTestDispatcher(t *testing.T) (*Dispatcher, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	hash, err := auth.HashPassword(testAdminPassword)
	require.NoError(t, err)
	_, err = store.Credentials().Upsert(context.Background(), hash)
	require.NoError(t, err)

	log := logger.NewNop()
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	login := authUC.NewLoginUseCase(store.Credentials(), jwtSvc, log)
	rotate := authUC.NewRotatePasswordUseCase(store.Credentials(), log)

	repos := Repositories{
		Profiles:       store.Profiles(),
		SocialLinks:    store.SocialLinks(),
		Skills:         store.Skills(),
		Experience:     store.Experience(),
		Projects:       store.Projects(),
		Education:      store.Education(),
		Certifications: store.Certifications(),
		Testimonials:   store.Testimonials(),
		Services:       store.Services(),
		Sections:       store.Sections(),
		Credentials:    store.Credentials(),
	}
	return NewDispatcher(repos, login, rotate, nil, nil, log), store
}

func raw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestDispatch_UnknownAction(t *testing.T) {
	d, _ := newTestDispatcher(t)

	_, err := d.Dispatch(context.Background(), Request{Action: "explodeEverything"}, Identity{Authenticated: true})
	assert.ErrorIs(t, err, apperror.ErrInvalidAction)
}

func TestDispatch_UnauthenticatedWriteRejected(t *testing.T) {
	d, store := newTestDispatcher(t)
	ctx := context.Background()

	req := Request{
		Action: "addSkill",
		Data:   raw(t, map[string]any{"name": "Go", "category": "Backend", "level": 90}),
	}
	_, err := d.Dispatch(ctx, req, Identity{})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	skills, err := store.Skills().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, skills, "rejected write must not change state")
}

func TestDispatch_InlinePasswordAuthenticates(t *testing.T) {
	d, store := newTestDispatcher(t)
	ctx := context.Background()

	req := Request{
		Action: "addSkill",
		Data: raw(t, map[string]any{
			"name":          "Go",
			"category":      "Backend",
			"level":         90,
			"adminPassword": testAdminPassword,
		}),
	}
	result, err := d.Dispatch(ctx, req, Identity{})
	require.NoError(t, err)

	created, ok := result.(*skill.Skill)
	require.True(t, ok)
	assert.Equal(t, "Go", created.Name)
	assert.True(t, created.Enabled, "enabled defaults to true when omitted")

	skills, err := store.Skills().List(ctx)
	require.NoError(t, err)
	assert.Len(t, skills, 1)
}

func TestDispatch_WrongInlinePasswordRejected(t *testing.T) {
	d, _ := newTestDispatcher(t)

	req := Request{
		Action: "addSkill",
		Data:   raw(t, map[string]any{"name": "Go", "category": "Backend", "level": 90, "adminPassword": "nope"}),
	}
	_, err := d.Dispatch(context.Background(), req, Identity{})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestDispatch_LoginFlow(t *testing.T) {
	d, _ := newTestDispatcher(t)
	ctx := context.Background()

	_, err := d.Dispatch(ctx, Request{
		Action: "login",
		Data:   raw(t, map[string]string{"password": "wrong"}),
	}, Identity{})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	result, err := d.Dispatch(ctx, Request{
		Action: "login",
		Data:   raw(t, map[string]string{"password": testAdminPassword}),
	}, Identity{})
	require.NoError(t, err)

	token, ok := result.(*TokenResult)
	require.True(t, ok)
	assert.NotEmpty(t, token.Token)
}

func TestDispatch_CheckAuth(t *testing.T) {
	d, _ := newTestDispatcher(t)
	ctx := context.Background()

	result, err := d.Dispatch(ctx, Request{Action: "checkAuth"}, Identity{})
	require.NoError(t, err)
	assert.False(t, result.(*AuthStatus).Authenticated)

	result, err = d.Dispatch(ctx, Request{Action: "checkAuth"}, Identity{Authenticated: true})
	require.NoError(t, err)
	assert.True(t, result.(*AuthStatus).Authenticated)

	result, err = d.Dispatch(ctx, Request{
		Action: "checkAuth",
		Data:   raw(t, map[string]string{"adminPassword": testAdminPassword}),
	}, Identity{})
	require.NoError(t, err)
	assert.True(t, result.(*AuthStatus).Authenticated)
}

func TestDispatch_UpdateThemeIsPublic(t *testing.T) {
	d, store := newTestDispatcher(t)
	ctx := context.Background()

	result, err := d.Dispatch(ctx, Request{
		Action: "updateTheme",
		Data:   raw(t, map[string]string{"theme": "bauhaus"}),
	}, Identity{})
	require.NoError(t, err)

	p, ok := result.(*profile.Profile)
	require.True(t, ok)
	assert.Equal(t, profile.ThemeBauhaus, p.Theme)

	stored, err := store.Profiles().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile.ThemeBauhaus, stored.Theme)
}

func TestDispatch_UpdateThemeLeavesOtherProfileFieldsAlone(t *testing.T) {
	d, store := newTestDispatcher(t)
	ctx := context.Background()

	_, err := d.Dispatch(ctx, Request{
		Action: "updateProfile",
		Data:   raw(t, map[string]any{"name": "Warda", "title": "Backend Engineer"}),
	}, Identity{Authenticated: true})
	require.NoError(t, err)

	_, err = d.Dispatch(ctx, Request{
		Action: "updateTheme",
		Data:   raw(t, map[string]string{"theme": "bauhaus"}),
	}, Identity{})
	require.NoError(t, err)

	stored, err := store.Profiles().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile.ThemeBauhaus, stored.Theme)
	assert.Equal(t, "Warda", stored.Name)
	assert.Equal(t, "Backend Engineer", stored.Title)
}

func TestDispatch_RangeValidation(t *testing.T) {
	d, _ := newTestDispatcher(t)
	ctx := context.Background()
	ident := Identity{Authenticated: true}

	_, err := d.Dispatch(ctx, Request{
		Action: "addSkill",
		Data:   raw(t, map[string]any{"name": "Go", "category": "Backend", "level": 101}),
	}, ident)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = d.Dispatch(ctx, Request{
		Action: "addTestimonial",
		Data:   raw(t, map[string]any{"name": "A Client", "content": "great", "rating": 0}),
	}, ident)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestDispatch_UpdateThemeRejectsUnknownTheme(t *testing.T) {
	d, _ := newTestDispatcher(t)

	_, err := d.Dispatch(context.Background(), Request{
		Action: "updateTheme",
		Data:   raw(t, map[string]string{"theme": "vaporwave"}),
	}, Identity{})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestDispatch_UpdateAndDeleteSkill(t *testing.T) {
	d, _ := newTestDispatcher(t)
	ctx := context.Background()
	ident := Identity{Authenticated: true}

	result, err := d.Dispatch(ctx, Request{
		Action: "addSkill",
		Data:   raw(t, map[string]any{"name": "Go", "category": "Backend", "level": 70}),
	}, ident)
	require.NoError(t, err)
	created := result.(*skill.Skill)
	id := created.ID

	result, err = d.Dispatch(ctx, Request{
		Action: "updateSkill",
		ID:     "1",
		Data:   raw(t, map[string]any{"level": 95}),
	}, ident)
	require.NoError(t, err)
	updated := result.(*skill.Skill)
	assert.Equal(t, 95, updated.Level)
	assert.Equal(t, "Go", updated.Name, "untouched fields survive a partial update")
	assert.Equal(t, id, updated.ID)

	_, err = d.Dispatch(ctx, Request{Action: "deleteSkill", ID: "1"}, ident)
	require.NoError(t, err)

	_, err = d.Dispatch(ctx, Request{Action: "deleteSkill", ID: "1"}, ident)
	assert.ErrorIs(t, err, apperror.ErrNotFound, "second delete of the same id")
}

func TestDispatch_UpdateRequiresNumericID(t *testing.T) {
	d, _ := newTestDispatcher(t)
	ident := Identity{Authenticated: true}

	_, err := d.Dispatch(context.Background(), Request{Action: "updateSkill", ID: "abc"}, ident)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = d.Dispatch(context.Background(), Request{Action: "deleteSkill"}, ident)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestDispatch_ReorderProjects(t *testing.T) {
	d, store := newTestDispatcher(t)
	ctx := context.Background()
	ident := Identity{Authenticated: true}

	for _, title := range []string{"first", "second", "third"} {
		_, err := d.Dispatch(ctx, Request{
			Action: "addProject",
			Data:   raw(t, map[string]any{"title": title}),
		}, ident)
		require.NoError(t, err)
	}

	_, err := d.Dispatch(ctx, Request{
		Action: "reorderProjects",
		Data:   raw(t, map[string]any{"projectIds": []string{"3", "1", "2"}}),
	}, ident)
	require.NoError(t, err)

	projects, err := store.Projects().List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	titles := []string{projects[0].Title, projects[1].Title, projects[2].Title}
	assert.Equal(t, []string{"third", "first", "second"}, titles)

	_, err = d.Dispatch(ctx, Request{
		Action: "reorderProjects",
		Data:   raw(t, map[string]any{"projectIds": []string{"99"}}),
	}, ident)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDispatch_ProjectSortOrderAssigned(t *testing.T) {
	d, store := newTestDispatcher(t)
	ctx := context.Background()
	ident := Identity{Authenticated: true}

	result, err := d.Dispatch(ctx, Request{
		Action: "addProject",
		Data:   raw(t, map[string]any{"title": "one"}),
	}, ident)
	require.NoError(t, err)
	assert.Equal(t, 1, result.(*project.Project).SortOrder)

	result, err = d.Dispatch(ctx, Request{
		Action: "addProject",
		Data:   raw(t, map[string]any{"title": "two"}),
	}, ident)
	require.NoError(t, err)
	assert.Equal(t, 2, result.(*project.Project).SortOrder)

	projects, err := store.Projects().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "one", projects[0].Title)
}

func TestDispatch_RotatePassword(t *testing.T) {
	d, _ := newTestDispatcher(t)
	ctx := context.Background()

	_, err := d.Dispatch(ctx, Request{
		Action: "updateAdminPassword",
		Data:   raw(t, map[string]string{"newPassword": "a-new-password"}),
	}, Identity{})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized, "rotation requires authentication")

	_, err = d.Dispatch(ctx, Request{
		Action: "updateAdminPassword",
		Data:   raw(t, map[string]string{"newPassword": "short"}),
	}, Identity{Authenticated: true})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = d.Dispatch(ctx, Request{
		Action: "updateAdminPassword",
		Data:   raw(t, map[string]string{"newPassword": "a-new-password"}),
	}, Identity{Authenticated: true})
	require.NoError(t, err)

	_, err = d.Dispatch(ctx, Request{
		Action: "login",
		Data:   raw(t, map[string]string{"password": testAdminPassword}),
	}, Identity{})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized, "old password stops working")

	_, err = d.Dispatch(ctx, Request{
		Action: "login",
		Data:   raw(t, map[string]string{"password": "a-new-password"}),
	}, Identity{})
	assert.NoError(t, err)
}

func TestDispatch_UpdateSectionSettingsDefaultsMissingFlags(t *testing.T) {
	d, store := newTestDispatcher(t)
	ctx := context.Background()

	result, err := d.Dispatch(ctx, Request{
		Action: "updateSectionSettings",
		Data:   raw(t, map[string]bool{"testimonials": false}),
	}, Identity{Authenticated: true})
	require.NoError(t, err)

	settings := result.(*section.Settings)
	assert.False(t, settings.Testimonials)
	assert.True(t, settings.Hero, "flags missing from the payload stay visible")

	stored, err := store.Sections().Get(ctx)
	require.NoError(t, err)
	assert.False(t, stored.Testimonials)
	assert.True(t, stored.Contact)
}

func TestDispatch_UpdateProfilePreservesUnmentionedFields(t *testing.T) {
	d, store := newTestDispatcher(t)
	ctx := context.Background()
	ident := Identity{Authenticated: true}

	_, err := d.Dispatch(ctx, Request{
		Action: "updateProfile",
		Data:   raw(t, map[string]any{"name": "Warda", "bio": "Builds backends.", "email": "w@example.com"}),
	}, ident)
	require.NoError(t, err)

	result, err := d.Dispatch(ctx, Request{
		Action: "updateProfile",
		Data:   raw(t, map[string]any{"title": "Staff Engineer"}),
	}, ident)
	require.NoError(t, err)

	updated := result.(*profile.Profile)
	assert.Equal(t, "Staff Engineer", updated.Title)
	assert.Equal(t, "Warda", updated.Name, "fields absent from the payload keep their stored value")
	assert.Equal(t, "Builds backends.", updated.Bio)
	assert.Equal(t, "w@example.com", updated.Email)

	stored, err := store.Profiles().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Warda", stored.Name)
	assert.Equal(t, "Staff Engineer", stored.Title)
}

func TestDispatch_UpdateSectionSettingsPreservesStoredFlags(t *testing.T) {
	d, store := newTestDispatcher(t)
	ctx := context.Background()
	ident := Identity{Authenticated: true}

	_, err := d.Dispatch(ctx, Request{
		Action: "updateSectionSettings",
		Data:   raw(t, map[string]bool{"testimonials": false}),
	}, ident)
	require.NoError(t, err)

	result, err := d.Dispatch(ctx, Request{
		Action: "updateSectionSettings",
		Data:   raw(t, map[string]bool{"hero": false}),
	}, ident)
	require.NoError(t, err)

	settings := result.(*section.Settings)
	assert.False(t, settings.Hero)
	assert.False(t, settings.Testimonials, "a hidden section stays hidden when a later payload omits it")

	stored, err := store.Sections().Get(ctx)
	require.NoError(t, err)
	assert.False(t, stored.Testimonials)
	assert.False(t, stored.Hero)
	assert.True(t, stored.Contact)
}

func TestDispatch_UpdateExperienceReplacesAchievements(t *testing.T) {
	d, store := newTestDispatcher(t)
	ctx := context.Background()
	ident := Identity{Authenticated: true}

	result, err := d.Dispatch(ctx, Request{
		Action: "addWorkExperience",
		Data: raw(t, map[string]any{
			"title":        "Backend Engineer",
			"company":      "Acme",
			"startDate":    "2023-01-01",
			"achievements": []string{"shipped v1", "cut latency"},
		}),
	}, ident)
	require.NoError(t, err)
	created := result.(*experience.WorkExperience)
	require.Len(t, created.Achievements, 2)

	result, err = d.Dispatch(ctx, Request{
		Action: "updateWorkExperience",
		ID:     "1",
		Data:   raw(t, map[string]any{"achievements": []string{"led the rewrite"}}),
	}, ident)
	require.NoError(t, err)

	updated := result.(*experience.WorkExperience)
	assert.Equal(t, []string{"led the rewrite"}, updated.Achievements,
		"the new list replaces the old one, it is not merged")
	assert.Equal(t, "Backend Engineer", updated.Title, "untouched fields survive")

	rows, err := store.Experience().List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"led the rewrite"}, rows[0].Achievements)
}
