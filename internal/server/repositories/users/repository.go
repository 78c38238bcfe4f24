package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophmatch/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills ID and timestamps. A taken email yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	TouchLastActive(ctx context.Context, id string, at time.Time) error
}
