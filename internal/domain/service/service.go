package service

import (
	"context"
	"errors"
)

var ErrTitleRequired = errors.New("title is required")

// Service is one offering card ("What I do"). Icon is a symbolic name the
// presentation layer resolves.
type Service struct {
	ID          int64    `json:"-"`
	ProfileID   int64    `json:"-"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
	Enabled     bool     `json:"enabled"`
}

func (s *Service) Validate() error {
	if s.Title == "" {
		return ErrTitleRequired
	}
	return nil
}

type Patch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	Features    *[]string `json:"features"`
	Enabled     *bool     `json:"enabled"`
}

type Repository interface {
	List(ctx context.Context) ([]*Service, error)
	Create(ctx context.Context, s *Service) (*Service, error)
	Update(ctx context.Context, id int64, patch Patch) (*Service, error)
	Delete(ctx context.Context, id int64) error
}
