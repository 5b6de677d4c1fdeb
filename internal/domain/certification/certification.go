package certification

import (
	"context"
	"errors"
)

var ErrNameRequired = errors.New("name is required")

type Certification struct {
	ID           int64  `json:"-"`
	ProfileID    int64  `json:"-"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	URL          string `json:"url"`
	CredentialID string `json:"credentialId"`
	Enabled      bool   `json:"enabled"`
}

func (c *Certification) Validate() error {
	if c.Name == "" {
		return ErrNameRequired
	}
	return nil
}

type Patch struct {
	Name         *string `json:"name"`
	Issuer       *string `json:"issuer"`
	Date         *string `json:"date"`
	URL          *string `json:"url"`
	CredentialID *string `json:"credentialId"`
	Enabled      *bool   `json:"enabled"`
}

type Repository interface {
	List(ctx context.Context) ([]*Certification, error)
	Create(ctx context.Context, c *Certification) (*Certification, error)
	Update(ctx context.Context, id int64, patch Patch) (*Certification, error)
	Delete(ctx context.Context, id int64) error
}
