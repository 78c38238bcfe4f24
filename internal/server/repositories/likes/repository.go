// Package likes stores directed like edges, unique per (liker, likee).
package likes

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophmatch/internal/server/models"
)

type Repository interface {
	// Create inserts the edge unless it already exists and reports whether a
	// row was written. A repeated like is not an error.
	Create(ctx context.Context, likerID, likeeID string, at time.Time) (bool, error)
	Exists(ctx context.Context, likerID, likeeID string) (bool, error)
	ListByLiker(ctx context.Context, likerID string) ([]*models.Like, error)
}
