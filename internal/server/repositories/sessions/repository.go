// Package sessions declares the repository contract for refresh-token
// sessions. Sessions are looked up by the keyed fingerprint of the raw token;
// the raw token itself is never handed to storage.
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophmatch/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.Session) error

	// FindByFingerprint returns common.ErrorNotFound when no session carries fp.
	FindByFingerprint(ctx context.Context, fp string) (*models.Session, error)
	Get(ctx context.Context, id string) (*models.Session, error)

	// Rotate replaces oldFP with newFP only if the session still carries
	// oldFP and is not revoked. It reports whether it won.
	Rotate(ctx context.Context, id, oldFP, newFP string, expiresAt, now time.Time) (bool, error)

	// Revoke is idempotent; an unknown id yields common.ErrorNotFound.
	Revoke(ctx context.Context, id string, at time.Time) error
	RevokeAllForUser(ctx context.Context, userID string, at time.Time) (int64, error)

	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
