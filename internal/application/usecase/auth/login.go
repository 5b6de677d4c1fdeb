package auth

import (
	"context"

	"github.com/wsikandar/portfolio-cms/internal/domain/admin"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/auth"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

type LoginUseCase struct {
	credentials admin.Repository
	jwtSvc      *auth.JWTService
	logger      logger.Logger
}

func NewLoginUseCase(repo admin.Repository, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		credentials: repo,
		jwtSvc:      jwtSvc,
		logger:      log,
	}
}

type LoginOutput struct {
	AccessToken string
}

// Execute checks the supplied password against the stored hash and issues an
// admin token. A missing credential row means no admin has been provisioned
// yet and every login fails.
func (uc *LoginUseCase) Execute(ctx context.Context, password string) (*LoginOutput, error) {
	ok, err := uc.VerifyPassword(ctx, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewUnauthorized("incorrect password", nil)
	}

	token, err := uc.jwtSvc.GenerateToken()
	if err != nil {
		uc.logger.Error("Failed to generate token", err)
		return nil, apperror.NewInternal("failed to generate token", err)
	}
	return &LoginOutput{AccessToken: token}, nil
}

// VerifyPassword reports whether the password matches the stored credential.
// Used both by login and by action requests that authenticate inline.
func (uc *LoginUseCase) VerifyPassword(ctx context.Context, password string) (bool, error) {
	if password == "" {
		return false, nil
	}
	cred, err := uc.credentials.Get(ctx)
	if err != nil {
		return false, err
	}
	if cred == nil {
		return false, nil
	}
	return auth.CheckPasswordHash(password, cred.PasswordHash), nil
}
