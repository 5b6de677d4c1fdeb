package skill

import (
	"context"
	"errors"
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrLevelOutOfRange = errors.New("level must be between 0 and 100")
)

// Skill is one entry of the grouped skill list. Display order is category
// then name, both ascending.
type Skill struct {
	ID        int64  `json:"-"`
	ProfileID int64  `json:"-"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Level     int    `json:"level"`
	Enabled   bool   `json:"enabled"`
}

func (s *Skill) Validate() error {
	if s.Name == "" {
		return ErrNameRequired
	}
	if s.Level < 0 || s.Level > 100 {
		return ErrLevelOutOfRange
	}
	return nil
}

type Patch struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Level    *int    `json:"level"`
	Enabled  *bool   `json:"enabled"`
}

func (p Patch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return ErrNameRequired
	}
	if p.Level != nil && (*p.Level < 0 || *p.Level > 100) {
		return ErrLevelOutOfRange
	}
	return nil
}

type Repository interface {
	List(ctx context.Context) ([]*Skill, error)
	Create(ctx context.Context, s *Skill) (*Skill, error)
	Update(ctx context.Context, id int64, patch Patch) (*Skill, error)
	Delete(ctx context.Context, id int64) error
}
