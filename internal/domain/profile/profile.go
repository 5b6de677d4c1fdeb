package profile

import (
	"context"
	"errors"
)

// Theme selects one of the two public site renderings.
type Theme string

const (
	ThemeProfessional Theme = "professional"
	ThemeBauhaus      Theme = "bauhaus"
)

var ErrInvalidTheme = errors.New("theme must be 'professional' or 'bauhaus'")

func (t Theme) Valid() bool {
	return t == ThemeProfessional || t == ThemeBauhaus
}

// Profile is the singleton aggregate root. Every other entity carries its id.
type Profile struct {
	ID                int64  `json:"-"`
	Name              string `json:"name"`
	Title             string `json:"title"`
	Subtitle          string `json:"subtitle"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Location          string `json:"location"`
	Bio               string `json:"bio"`
	ShortBio          string `json:"shortBio"`
	ProfileImage      string `json:"profileImage"`
	ResumeURL         string `json:"resumeUrl"`
	AvailableForHire  bool   `json:"availableForHire"`
	YearsOfExperience int    `json:"yearsOfExperience"`
	ProjectsCompleted int    `json:"projectsCompleted"`
	HappyClients      int    `json:"happyClients"`
	Theme             Theme  `json:"theme"`
}

func (p *Profile) Validate() error {
	if p.Theme != "" && !p.Theme.Valid() {
		return ErrInvalidTheme
	}
	return nil
}

// Default returns the hard fallback profile used when no row exists yet and by
// the client mirror when the aggregate fetch fails.
func Default() *Profile {
	return &Profile{
		Name:  "Portfolio",
		Title: "Developer",
		Theme: ThemeProfessional,
	}
}

// Patch carries the updatable fields; nil means leave the stored value alone.
type Patch struct {
	Name              *string `json:"name"`
	Title             *string `json:"title"`
	Subtitle          *string `json:"subtitle"`
	Email             *string `json:"email"`
	Phone             *string `json:"phone"`
	Location          *string `json:"location"`
	Bio               *string `json:"bio"`
	ShortBio          *string `json:"shortBio"`
	ProfileImage      *string `json:"profileImage"`
	ResumeURL         *string `json:"resumeUrl"`
	AvailableForHire  *bool   `json:"availableForHire"`
	YearsOfExperience *int    `json:"yearsOfExperience"`
	ProjectsCompleted *int    `json:"projectsCompleted"`
	HappyClients      *int    `json:"happyClients"`
	Theme             *Theme  `json:"theme"`
}

func (p Patch) Validate() error {
	if p.Theme != nil && !p.Theme.Valid() {
		return ErrInvalidTheme
	}
	return nil
}

type Repository interface {
	Get(ctx context.Context) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) (*Profile, error)
	// Update applies only the supplied fields, creating the default row
	// first when none exists yet.
	Update(ctx context.Context, patch Patch) (*Profile, error)
	// SetTheme changes only the theme column, creating a default profile row
	// if none exists yet. It is the one public write in the system.
	SetTheme(ctx context.Context, theme Theme) (*Profile, error)
}
