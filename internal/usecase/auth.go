package usecase

import (
	"context"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/repository"
)

// AuthManager is the auth side of the repository layer.
type AuthManager interface {
	GetAuthLogin(ctx context.Context) repository.Result[domain.AuthLogin]
	Login(ctx context.Context, login, password string, applicationID int64) repository.Result[domain.AuthLogin]
}

// GetAuthLogin returns the current session.
type GetAuthLogin struct {
	Auth AuthManager
}

// Run implements UseCase.
func (uc GetAuthLogin) Run(ctx context.Context, _ None) Result[domain.AuthLogin] {
	return uc.Auth.GetAuthLogin(ctx)
}

// LoginParams are the credentials of a login.
type LoginParams struct {
	Login         string
	Password      string
	ApplicationID int64
}

// Login authenticates against GeoNature.
type Login struct {
	Auth AuthManager
}

// Run implements UseCase.
func (uc Login) Run(ctx context.Context, p LoginParams) Result[domain.AuthLogin] {
	return uc.Auth.Login(ctx, p.Login, p.Password, p.ApplicationID)
}
