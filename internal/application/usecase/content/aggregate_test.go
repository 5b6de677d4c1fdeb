package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsikandar/portfolio-cms/adapters/persistence/memory"
	"github.com/wsikandar/portfolio-cms/internal/domain/profile"
	"github.com/wsikandar/portfolio-cms/internal/domain/project"
	"github.com/wsikandar/portfolio-cms/internal/domain/skill"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

func newAggregate(store *memory.Store, skills skill.Repository, profiles profile.Repository) *AggregateUseCase {
	return NewAggregateUseCase(
		profiles,
		store.SocialLinks(),
		skills,
		store.Experience(),
		store.Projects(),
		store.Education(),
		store.Certifications(),
		store.Testimonials(),
		store.Services(),
		store.Sections(),
		logger.NewNop(),
	)
}

func TestSnapshot_EmptyStoreYieldsDefaults(t *testing.T) {
	store := memory.NewStore()
	uc := newAggregate(store, store.Skills(), store.Profiles())

	snap := uc.Snapshot(context.Background())

	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Portfolio", snap.Profile.Name)
	assert.Equal(t, profile.ThemeProfessional, snap.Profile.Theme)
	require.NotNil(t, snap.SectionSettings)
	assert.True(t, snap.SectionSettings.Hero)
	assert.Empty(t, snap.Skills)
	assert.Empty(t, snap.Projects)
}

func TestSnapshot_CollectsAllSections(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	_, err := store.Skills().Create(ctx, &skill.Skill{Name: "Go", Category: "Backend", Level: 90, Enabled: true})
	require.NoError(t, err)
	_, err = store.Skills().Create(ctx, &skill.Skill{Name: "Docker", Category: "Infra", Level: 70, Enabled: true})
	require.NoError(t, err)

	uc := newAggregate(store, store.Skills(), store.Profiles())
	snap := uc.Snapshot(ctx)

	require.Len(t, snap.Skills, 2)
	assert.Equal(t, "Go", snap.Skills[0].Name, "sorted by category then name")
}

func TestSnapshot_FailingBranchDegradesToEmpty(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	_, err := store.Projects().Create(ctx, &project.Project{Title: "demo", Enabled: true})
	require.NoError(t, err)

	brokenSkills := store.Skills()
	brokenSkills.Err = errors.New("connection refused")

	uc := newAggregate(store, brokenSkills, store.Profiles())
	snap := uc.Snapshot(ctx)

	assert.Empty(t, snap.Skills, "failing branch yields empty, not an error")
	require.Len(t, snap.Projects, 1, "healthy branches still load")
}

func TestSnapshot_ProfileErrorFallsBackToDefault(t *testing.T) {
	store := memory.NewStore()

	brokenProfiles := store.Profiles()
	brokenProfiles.Err = errors.New("connection refused")

	uc := newAggregate(store, store.Skills(), brokenProfiles)
	snap := uc.Snapshot(context.Background())

	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Portfolio", snap.Profile.Name)
}
