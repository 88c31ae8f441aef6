package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
)

// AuthStore keeps the current login session.
type AuthStore struct {
	db *sqlx.DB
}

// NewAuthStore creates a new auth store.
func NewAuthStore(db *sqlx.DB) *AuthStore {
	return &AuthStore{db: db}
}

type authRow struct {
	UserID    int64        `db:"user_id"`
	Login     string       `db:"login"`
	Token     string       `db:"token"`
	ExpiresAt sql.NullTime `db:"expires_at"`
}

// Get returns the stored session.
func (s *AuthStore) Get(ctx context.Context) (*domain.AuthLogin, error) {
	var row authRow
	err := s.db.GetContext(ctx, &row, `SELECT user_id, login, token, expires_at FROM auth_logins LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(EntityAuthLogin, "")
	}
	if err != nil {
		return nil, fmt.Errorf("get auth login: %w", err)
	}

	return &domain.AuthLogin{
		UserID:    row.UserID,
		Login:     row.Login,
		Token:     row.Token,
		ExpiresAt: row.ExpiresAt.Time,
	}, nil
}

// Save replaces the stored session with login.
func (s *AuthStore) Save(ctx context.Context, login domain.AuthLogin) error {
	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM auth_logins`); err != nil {
			return fmt.Errorf("clear auth login: %w", err)
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO auth_logins (user_id, login, token, expires_at) VALUES (?, ?, ?, ?)`,
			login.UserID, login.Login, login.Token, login.ExpiresAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("save auth login: %w", err)
		}
		return nil
	})
}

// Clear removes the stored session.
func (s *AuthStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM auth_logins`); err != nil {
		return fmt.Errorf("clear auth login: %w", err)
	}
	return nil
}
