package admin

import "context"

// Credential is the single stored admin secret. Only the bcrypt hash is ever
// persisted; it never leaves this package boundary in responses.
type Credential struct {
	ID           int64
	ProfileID    int64
	PasswordHash string
}

type Repository interface {
	Get(ctx context.Context) (*Credential, error)
	Upsert(ctx context.Context, passwordHash string) (*Credential, error)
}
