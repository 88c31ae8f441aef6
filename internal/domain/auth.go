package domain

import "time"

// AuthLogin is the session obtained after logging in to GeoNature.
type AuthLogin struct {
	UserID    int64     `json:"user_id"`
	Login     string    `json:"login"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (a AuthLogin) Expired(now time.Time) bool {
	return !a.ExpiresAt.IsZero() && !now.Before(a.ExpiresAt)
}
