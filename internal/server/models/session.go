package models

import "time"

// Session is a refresh-token session. Only the keyed fingerprint of the raw
// refresh token is stored.
type Session struct {
	ID          string
	UserID      string
	DeviceID    string
	Fingerprint string
	IssuedAt    time.Time
	ExpiresAt   time.Time
	RotatedAt   *time.Time
	RevokedAt   *time.Time
}

func (s *Session) Revoked() bool {
	return s.RevokedAt != nil
}

func (s *Session) ExpiredAt(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
