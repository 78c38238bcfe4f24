package matches

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophmatch/internal/common"
	"github.com/dmitrijs2005/gophmatch/internal/dbx"
	"github.com/dmitrijs2005/gophmatch/internal/server/models"
)

const pairConstraint = "matches_pair_key"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user1, user2 string) (*models.Match, error) {
	query := `
		INSERT INTO matches (user1_id, user2_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	m := &models.Match{User1ID: user1, User2ID: user2}
	if err := r.db.QueryRowContext(ctx, query, user1, user2).Scan(&m.ID, &m.CreatedAt); err != nil {
		if dbx.IsUniqueViolation(err, pairConstraint) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) GetByPair(ctx context.Context, user1, user2 string) (*models.Match, error) {
	query := `
		SELECT id, user1_id, user2_id, created_at
		FROM matches
		WHERE user1_id = $1 AND user2_id = $2
	`
	m := &models.Match{}
	err := r.db.QueryRowContext(ctx, query, user1, user2).Scan(&m.ID, &m.User1ID, &m.User2ID, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]*models.Match, error) {
	query := `
		SELECT id, user1_id, user2_id, created_at
		FROM matches
		WHERE user1_id = $1 OR user2_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Match
	for rows.Next() {
		m := &models.Match{}
		if err := rows.Scan(&m.ID, &m.User1ID, &m.User2ID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
