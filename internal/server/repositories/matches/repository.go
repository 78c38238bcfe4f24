// Package matches stores mutual matches. The (user1_id, user2_id) pair is
// kept in canonical order and is unique; that constraint is what arbitrates
// concurrent reciprocal likes.
package matches

import (
	"context"

	"github.com/dmitrijs2005/gophmatch/internal/server/models"
)

type Repository interface {
	// Create inserts the canonical pair (user1 < user2). If the pair already
	// has a match it returns common.ErrorAlreadyExists and writes nothing.
	Create(ctx context.Context, user1, user2 string) (*models.Match, error)
	GetByPair(ctx context.Context, user1, user2 string) (*models.Match, error)
	// ListForUser returns matches on either side of userID, newest first.
	ListForUser(ctx context.Context, userID string) ([]*models.Match, error)
}
