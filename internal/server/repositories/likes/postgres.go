package likes

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophmatch/internal/common"
	"github.com/dmitrijs2005/gophmatch/internal/dbx"
	"github.com/dmitrijs2005/gophmatch/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, likerID, likeeID string, at time.Time) (bool, error) {
	query := `
		INSERT INTO likes (liker_id, likee_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (liker_id, likee_id) DO NOTHING
	`
	res, err := r.db.ExecContext(ctx, query, likerID, likeeID, at)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return false, common.ErrorNotFound
		}
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, likerID, likeeID string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM likes WHERE liker_id = $1 AND likee_id = $2)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, likerID, likeeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) ListByLiker(ctx context.Context, likerID string) ([]*models.Like, error) {
	query := `
		SELECT liker_id, likee_id, created_at
		FROM likes
		WHERE liker_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, likerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Like
	for rows.Next() {
		l := &models.Like{}
		if err := rows.Scan(&l.LikerID, &l.LikeeID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
