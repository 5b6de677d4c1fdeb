package experience

import (
	"context"
	"errors"
)

var ErrTitleRequired = errors.New("title is required")

// Link is a labelled URL attached to a position (talk, press, case study).
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// WorkExperience is one position on the timeline. Dates are YYYY-MM strings;
// Current=true means EndDate is ignored by consumers. The list fields keep
// insertion order, which is part of the visible contract.
type WorkExperience struct {
	ID           int64    `json:"-"`
	ProfileID    int64    `json:"-"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
	Links        []Link   `json:"links"`
	Enabled      bool     `json:"enabled"`
}

func (e *WorkExperience) Validate() error {
	if e.Title == "" {
		return ErrTitleRequired
	}
	return nil
}

type Patch struct {
	Title        *string   `json:"title"`
	Company      *string   `json:"company"`
	Location     *string   `json:"location"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	Current      *bool     `json:"current"`
	Description  *string   `json:"description"`
	Achievements *[]string `json:"achievements"`
	Technologies *[]string `json:"technologies"`
	Links        *[]Link   `json:"links"`
	Enabled      *bool     `json:"enabled"`
}

type Repository interface {
	List(ctx context.Context) ([]*WorkExperience, error)
	Create(ctx context.Context, e *WorkExperience) (*WorkExperience, error)
	Update(ctx context.Context, id int64, patch Patch) (*WorkExperience, error)
	Delete(ctx context.Context, id int64) error
}
