package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophmatch/internal/common"
	"github.com/dmitrijs2005/gophmatch/internal/dbx"
	"github.com/dmitrijs2005/gophmatch/internal/server/models"
	"github.com/google/uuid"
)

const emailConstraint = "users_email_key"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	skills, err := json.Marshal(nonNil(user.Skills))
	if err != nil {
		return nil, fmt.Errorf("encoding skills: %w", err)
	}

	query :=
		`INSERT INTO users (email, password_hash, role, skills, availability, behavior_score)
         VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, last_active_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.Role, skills, user.Availability, user.BehaviorScore).
		Scan(&user.ID, &user.CreatedAt, &user.LastActiveAt)

	if err != nil {
		if dbx.IsUniqueViolation(err, emailConstraint) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

const selectUser = `SELECT id, email, password_hash, role, skills, availability, behavior_score, created_at, last_active_at
		 FROM users`

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUser+`
		 WHERE email = $1
		 `, email)
}

// GetByID treats ids that are not UUIDs as absent instead of sending them to
// the server, where they would fail with invalid_text_representation.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}
	return r.getOne(ctx, selectUser+`
		 WHERE id = $1
		 `, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg string) (*models.User, error) {
	user := &models.User{}
	var skills []byte

	err := r.db.QueryRowContext(ctx, query, arg).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role,
		&skills, &user.Availability, &user.BehaviorScore, &user.CreatedAt, &user.LastActiveAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &user.Skills); err != nil {
			return nil, fmt.Errorf("decoding skills: %w", err)
		}
	}

	return user, nil
}

func (r *PostgresRepository) TouchLastActive(ctx context.Context, id string, at time.Time) error {
	query :=
		`UPDATE users SET last_active_at = $2
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, id, at); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
