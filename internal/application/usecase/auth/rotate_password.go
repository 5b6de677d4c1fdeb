package auth

import (
	"context"

	"github.com/wsikandar/portfolio-cms/internal/domain/admin"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/auth"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

const minPasswordLength = 8

type RotatePasswordUseCase struct {
	credentials admin.Repository
	logger      logger.Logger
}

func NewRotatePasswordUseCase(repo admin.Repository, log logger.Logger) *RotatePasswordUseCase {
	return &RotatePasswordUseCase{credentials: repo, logger: log}
}

// Execute replaces the stored admin credential. The caller must already be
// authenticated; previously issued tokens stay valid until they expire.
func (uc *RotatePasswordUseCase) Execute(ctx context.Context, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return apperror.NewInvalidInput("password must be at least 8 characters", nil)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperror.NewInternal("failed to hash password", err)
	}

	if _, err := uc.credentials.Upsert(ctx, hash); err != nil {
		return err
	}
	uc.logger.Info("admin password rotated")
	return nil
}
