package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophmatch/internal/common"
	"github.com/dmitrijs2005/gophmatch/internal/dbx"
	"github.com/dmitrijs2005/gophmatch/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, s *models.Session) error {
	query := `
		INSERT INTO sessions (id, user_id, device_id, fingerprint, issued_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.db.ExecContext(ctx, query, s.ID, s.UserID, s.DeviceID, s.Fingerprint, s.IssuedAt, s.ExpiresAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

const selectSession = `
		SELECT id, user_id, device_id, fingerprint, issued_at, expires_at, rotated_at, revoked_at
		FROM sessions`

func (r *PostgresRepository) FindByFingerprint(ctx context.Context, fp string) (*models.Session, error) {
	return r.getOne(ctx, selectSession+`
		WHERE fingerprint = $1
	`, fp)
}

// Get treats an id that is not a UUID as unknown, since the column would
// reject it with a cast error.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}
	return r.getOne(ctx, selectSession+`
		WHERE id = $1
	`, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query, arg string) (*models.Session, error) {
	s := &models.Session{}
	var rotated, revoked sql.NullTime

	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&s.ID, &s.UserID, &s.DeviceID, &s.Fingerprint, &s.IssuedAt, &s.ExpiresAt, &rotated, &revoked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if rotated.Valid {
		s.RotatedAt = &rotated.Time
	}
	if revoked.Valid {
		s.RevokedAt = &revoked.Time
	}
	return s, nil
}

// Rotate is a single conditional UPDATE, so of two callers presenting the
// same fingerprint at most one sees a row affected.
func (r *PostgresRepository) Rotate(ctx context.Context, id, oldFP, newFP string, expiresAt, now time.Time) (bool, error) {
	query := `
		UPDATE sessions
		SET fingerprint = $3, expires_at = $4, rotated_at = $5
		WHERE id = $1 AND fingerprint = $2 AND revoked_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, id, oldFP, newFP, expiresAt, now)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) Revoke(ctx context.Context, id string, at time.Time) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}

	query := `
		UPDATE sessions
		SET revoked_at = COALESCE(revoked_at, $2)
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) RevokeAllForUser(ctx context.Context, userID string, at time.Time) (int64, error) {
	query := `
		UPDATE sessions
		SET revoked_at = $2
		WHERE user_id = $1 AND revoked_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, userID, at)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	query := `
		DELETE FROM sessions
		WHERE expires_at < $1
	`
	res, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}
