package sociallink

import (
	"context"
	"errors"
)

var ErrPlatformRequired = errors.New("platform is required")

type SocialLink struct {
	ID        int64  `json:"-"`
	ProfileID int64  `json:"-"`
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	Icon      string `json:"icon"`
	Enabled   bool   `json:"enabled"`
}

func (l *SocialLink) Validate() error {
	if l.Platform == "" {
		return ErrPlatformRequired
	}
	return nil
}

// Patch lists the updatable fields; anything not here (id, owning profile)
// cannot be changed through an update.
type Patch struct {
	Platform *string `json:"platform"`
	URL      *string `json:"url"`
	Icon     *string `json:"icon"`
	Enabled  *bool   `json:"enabled"`
}

type Repository interface {
	List(ctx context.Context) ([]*SocialLink, error)
	Create(ctx context.Context, l *SocialLink) (*SocialLink, error)
	Update(ctx context.Context, id int64, patch Patch) (*SocialLink, error)
	Delete(ctx context.Context, id int64) error
}
