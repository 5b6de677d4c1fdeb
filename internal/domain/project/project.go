package project

import (
	"context"
	"errors"
)

var ErrTitleRequired = errors.New("title is required")

// Project display order is featured first, then the manually curated
// sort order, then start date descending.
type Project struct {
	ID              int64    `json:"-"`
	ProfileID       int64    `json:"-"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Technologies    []string `json:"technologies"`
	ImageURL        string   `json:"imageUrl"`
	VideoURL        string   `json:"videoUrl"`
	GithubURL       string   `json:"githubUrl"`
	LiveURL         string   `json:"liveUrl"`
	Category        string   `json:"category"`
	Featured        bool     `json:"featured"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	SortOrder       int      `json:"-"`
	Enabled         bool     `json:"enabled"`
}

func (p *Project) Validate() error {
	if p.Title == "" {
		return ErrTitleRequired
	}
	return nil
}

type Patch struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"longDescription"`
	Technologies    *[]string `json:"technologies"`
	ImageURL        *string   `json:"imageUrl"`
	VideoURL        *string   `json:"videoUrl"`
	GithubURL       *string   `json:"githubUrl"`
	LiveURL         *string   `json:"liveUrl"`
	Category        *string   `json:"category"`
	Featured        *bool     `json:"featured"`
	StartDate       *string   `json:"startDate"`
	EndDate         *string   `json:"endDate"`
	Enabled         *bool     `json:"enabled"`
}

type Repository interface {
	List(ctx context.Context) ([]*Project, error)
	Create(ctx context.Context, p *Project) (*Project, error)
	Update(ctx context.Context, id int64, patch Patch) (*Project, error)
	Delete(ctx context.Context, id int64) error
	// Reorder persists the given id sequence as the manual sort order.
	// Ids not present keep their previous relative position after the
	// reordered ones.
	Reorder(ctx context.Context, ids []int64) error
}
