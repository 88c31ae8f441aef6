package repository

import (
	"context"
	"time"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
)

// AuthRepository manages the login session.
type AuthRepository struct {
	local  AuthLocalSource
	remote AuthRemoteSource
	log    logger.Logger
	now    func() time.Time
}

// NewAuthRepository creates an auth repository. remote may be nil when only
// the stored session is needed.
func NewAuthRepository(local AuthLocalSource, remote AuthRemoteSource, log logger.Logger) *AuthRepository {
	return &AuthRepository{local: local, remote: remote, log: orNop(log), now: time.Now}
}

// GetAuthLogin returns the stored session. A missing or expired session is an
// AuthNotConnectedFailure.
func (r *AuthRepository) GetAuthLogin(ctx context.Context) Result[domain.AuthLogin] {
	return Guard(ctx, r.log, "get_auth_login", func(ctx context.Context) (domain.AuthLogin, error) {
		login, err := r.local.Get(ctx)
		if err != nil {
			return domain.AuthLogin{}, err
		}
		if login.Expired(r.now()) {
			if clearErr := r.local.Clear(ctx); clearErr != nil {
				r.log.Warn("Failed to clear expired session", logger.Error(clearErr))
			}
			return domain.AuthLogin{}, failure.AuthNotConnectedFailure{}
		}
		return *login, nil
	}, notFoundAs(failure.AuthNotConnectedFailure{}))
}

// Login authenticates and stores the new session.
func (r *AuthRepository) Login(ctx context.Context, login, password string, applicationID int64) Result[domain.AuthLogin] {
	return Guard(ctx, r.log, "login", func(ctx context.Context) (domain.AuthLogin, error) {
		session, err := r.remote.Login(ctx, login, password, applicationID)
		if err != nil {
			return domain.AuthLogin{}, err
		}
		if err := r.local.Save(ctx, *session); err != nil {
			return domain.AuthLogin{}, err
		}

		r.log.Info("Logged in",
			logger.String("login", session.Login),
			logger.Time("expires_at", session.ExpiresAt),
		)
		return *session, nil
	})
}

// Token returns the current session token, or "" when not connected. It
// matches remote.TokenFunc.
func (r *AuthRepository) Token(ctx context.Context) string {
	login, err := r.local.Get(ctx)
	if err != nil || login.Expired(r.now()) {
		return ""
	}
	return login.Token
}
