package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophmatch/internal/common"
)

// DefaultStorageTimeout bounds storage calls when no timeout is configured.
const DefaultStorageTimeout = 3 * time.Second

// unavailable wraps a storage failure so callers can match
// common.ErrStorageUnavailable while the cause stays in the chain for logs.
func unavailable(err error) error {
	if err == nil || errors.Is(err, common.ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
}

func withStorageTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultStorageTimeout
	}
	return context.WithTimeout(ctx, d)
}
