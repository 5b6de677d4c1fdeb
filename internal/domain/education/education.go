package education

import (
	"context"
	"errors"
)

var ErrDegreeRequired = errors.New("degree is required")

type Education struct {
	ID           int64    `json:"-"`
	ProfileID    int64    `json:"-"`
	Degree       string   `json:"degree"`
	Institution  string   `json:"institution"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Enabled      bool     `json:"enabled"`
}

func (e *Education) Validate() error {
	if e.Degree == "" {
		return ErrDegreeRequired
	}
	return nil
}

type Patch struct {
	Degree       *string   `json:"degree"`
	Institution  *string   `json:"institution"`
	Location     *string   `json:"location"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	Description  *string   `json:"description"`
	Achievements *[]string `json:"achievements"`
	Enabled      *bool     `json:"enabled"`
}

type Repository interface {
	List(ctx context.Context) ([]*Education, error)
	Create(ctx context.Context, e *Education) (*Education, error)
	Update(ctx context.Context, id int64, patch Patch) (*Education, error)
	Delete(ctx context.Context, id int64) error
}
