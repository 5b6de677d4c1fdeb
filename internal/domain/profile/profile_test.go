package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeValid(t *testing.T) {
	assert.True(t, ThemeProfessional.Valid())
	assert.True(t, ThemeBauhaus.Valid())
	assert.False(t, Theme("dark").Valid())
	assert.False(t, Theme("").Valid())
}

func TestProfileValidate(t *testing.T) {
	p := Profile{Name: "x", Theme: ThemeBauhaus}
	assert.NoError(t, p.Validate())

	p.Theme = "neon"
	assert.ErrorIs(t, p.Validate(), ErrInvalidTheme)

	// An unset theme is tolerated; storage applies the default.
	p.Theme = ""
	assert.NoError(t, p.Validate())
}

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, "Portfolio", p.Name)
	assert.Equal(t, ThemeProfessional, p.Theme)
}
