package testimonial

import (
	"context"
	"errors"
)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)

type Testimonial struct {
	ID        int64  `json:"-"`
	ProfileID int64  `json:"-"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Company   string `json:"company"`
	Content   string `json:"content"`
	ImageURL  string `json:"imageUrl"`
	Rating    int    `json:"rating"`
	Enabled   bool   `json:"enabled"`
}

func (t *Testimonial) Validate() error {
	if t.Name == "" {
		return ErrNameRequired
	}
	if t.Rating < 1 || t.Rating > 5 {
		return ErrRatingOutOfRange
	}
	return nil
}

type Patch struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Company  *string `json:"company"`
	Content  *string `json:"content"`
	ImageURL *string `json:"imageUrl"`
	Rating   *int    `json:"rating"`
	Enabled  *bool   `json:"enabled"`
}

func (p Patch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return ErrNameRequired
	}
	if p.Rating != nil && (*p.Rating < 1 || *p.Rating > 5) {
		return ErrRatingOutOfRange
	}
	return nil
}

type Repository interface {
	List(ctx context.Context) ([]*Testimonial, error)
	Create(ctx context.Context, t *Testimonial) (*Testimonial, error)
	Update(ctx context.Context, id int64, patch Patch) (*Testimonial, error)
	Delete(ctx context.Context, id int64) error
}
