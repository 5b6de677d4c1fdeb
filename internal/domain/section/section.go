package section

import "context"

// Settings is the per-profile singleton of page section toggles. Disabling a
// section hides it from the renderer; the underlying data stays available.
type Settings struct {
	ID               int64 `json:"-"`
	ProfileID        int64 `json:"-"`
	Hero             bool  `json:"hero"`
	About            bool  `json:"about"`
	Skills           bool  `json:"skills"`
	Experience       bool  `json:"experience"`
	Projects         bool  `json:"projects"`
	PersonalProjects bool  `json:"personalProjects"`
	Education        bool  `json:"education"`
	Certifications   bool  `json:"certifications"`
	Services         bool  `json:"services"`
	Testimonials     bool  `json:"testimonials"`
	Achievements     bool  `json:"achievements"`
	Languages        bool  `json:"languages"`
	Interests        bool  `json:"interests"`
	Publications     bool  `json:"publications"`
	Awards           bool  `json:"awards"`
	Volunteer        bool  `json:"volunteer"`
	Contact          bool  `json:"contact"`
	Timeline         bool  `json:"timeline"`
}

// Default returns settings with every section visible.
func Default() *Settings {
	return &Settings{
		Hero:             true,
		About:            true,
		Skills:           true,
		Experience:       true,
		Projects:         true,
		PersonalProjects: true,
		Education:        true,
		Certifications:   true,
		Services:         true,
		Testimonials:     true,
		Achievements:     true,
		Languages:        true,
		Interests:        true,
		Publications:     true,
		Awards:           true,
		Volunteer:        true,
		Contact:          true,
		Timeline:         true,
	}
}

// Patch toggles only the supplied flags; nil leaves the stored value alone.
type Patch struct {
	Hero             *bool `json:"hero"`
	About            *bool `json:"about"`
	Skills           *bool `json:"skills"`
	Experience       *bool `json:"experience"`
	Projects         *bool `json:"projects"`
	PersonalProjects *bool `json:"personalProjects"`
	Education        *bool `json:"education"`
	Certifications   *bool `json:"certifications"`
	Services         *bool `json:"services"`
	Testimonials     *bool `json:"testimonials"`
	Achievements     *bool `json:"achievements"`
	Languages        *bool `json:"languages"`
	Interests        *bool `json:"interests"`
	Publications     *bool `json:"publications"`
	Awards           *bool `json:"awards"`
	Volunteer        *bool `json:"volunteer"`
	Contact          *bool `json:"contact"`
	Timeline         *bool `json:"timeline"`
}

type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Upsert(ctx context.Context, s *Settings) (*Settings, error)
	// Update applies only the supplied flags, creating the all-visible row
	// first when none exists yet.
	Update(ctx context.Context, patch Patch) (*Settings, error)
}
