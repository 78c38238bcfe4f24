// Package memory is an in-process implementation of every repository. Each
// operation holds the store lock for its whole duration, so the conditional
// writes (like insert, match insert, session rotation) are atomic the same
// way the PostgreSQL statements are. The server always runs on PostgreSQL;
// this package backs the service and transport tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophmatch/internal/common"
	"github.com/dmitrijs2005/gophmatch/internal/server/models"
	"github.com/google/uuid"
)

type edge struct{ from, to string }

type Store struct {
	mu sync.RWMutex

	users  map[string]*models.User
	emails map[string]string

	sessions     map[string]*models.Session
	fingerprints map[string]string

	likes   map[edge]*models.Like
	matches map[edge]*models.Match
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]*models.User),
		emails:       make(map[string]string),
		sessions:     make(map[string]*models.Session),
		fingerprints: make(map[string]string),
		likes:        make(map[edge]*models.Like),
		matches:      make(map[edge]*models.Match),
	}
}

// Users

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, taken := r.s.emails[key]; taken {
		return nil, common.ErrorAlreadyExists
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt, user.LastActiveAt = now, now

	cp := *user
	cp.Skills = append([]string(nil), user.Skills...)
	r.s.users[user.ID] = &cp
	r.s.emails[key] = user.ID
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.emails[strings.ToLower(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *r.s.users[id]
	return &cp, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) TouchLastActive(ctx context.Context, id string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if u, ok := r.s.users[id]; ok {
		u.LastActiveAt = at
	}
	return nil
}

// Sessions

type SessionRepository struct{ s *Store }

func (r *SessionRepository) Create(ctx context.Context, sess *models.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, dup := r.s.fingerprints[sess.Fingerprint]; dup {
		return common.ErrorAlreadyExists
	}
	cp := *sess
	r.s.sessions[sess.ID] = &cp
	r.s.fingerprints[sess.Fingerprint] = sess.ID
	return nil
}

func (r *SessionRepository) FindByFingerprint(ctx context.Context, fp string) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.fingerprints[fp]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *r.s.sessions[id]
	return &cp, nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sess, ok := r.s.sessions[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *sess
	return &cp, nil
}

func (r *SessionRepository) Rotate(ctx context.Context, id, oldFP, newFP string, expiresAt, now time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sess, ok := r.s.sessions[id]
	if !ok || sess.Fingerprint != oldFP || sess.RevokedAt != nil {
		return false, nil
	}
	delete(r.s.fingerprints, oldFP)
	r.s.fingerprints[newFP] = id
	sess.Fingerprint = newFP
	sess.ExpiresAt = expiresAt
	rotated := now
	sess.RotatedAt = &rotated
	return true, nil
}

func (r *SessionRepository) Revoke(ctx context.Context, id string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sess, ok := r.s.sessions[id]
	if !ok {
		return common.ErrorNotFound
	}
	if sess.RevokedAt == nil {
		revoked := at
		sess.RevokedAt = &revoked
	}
	return nil
}

func (r *SessionRepository) RevokeAllForUser(ctx context.Context, userID string, at time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, sess := range r.s.sessions {
		if sess.UserID == userID && sess.RevokedAt == nil {
			revoked := at
			sess.RevokedAt = &revoked
			n++
		}
	}
	return n, nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, sess := range r.s.sessions {
		if sess.ExpiresAt.Before(before) {
			delete(r.s.fingerprints, sess.Fingerprint)
			delete(r.s.sessions, id)
			n++
		}
	}
	return n, nil
}

// Likes

type LikeRepository struct{ s *Store }

func (r *LikeRepository) Create(ctx context.Context, likerID, likeeID string, at time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[likerID]; !ok {
		return false, common.ErrorNotFound
	}
	if _, ok := r.s.users[likeeID]; !ok {
		return false, common.ErrorNotFound
	}

	key := edge{likerID, likeeID}
	if _, exists := r.s.likes[key]; exists {
		return false, nil
	}
	r.s.likes[key] = &models.Like{LikerID: likerID, LikeeID: likeeID, CreatedAt: at}
	return true, nil
}

func (r *LikeRepository) Exists(ctx context.Context, likerID, likeeID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.likes[edge{likerID, likeeID}]
	return ok, nil
}

func (r *LikeRepository) ListByLiker(ctx context.Context, likerID string) ([]*models.Like, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*models.Like
	for k, l := range r.s.likes {
		if k.from == likerID {
			cp := *l
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

// Matches

type MatchRepository struct{ s *Store }

func (r *MatchRepository) Create(ctx context.Context, user1, user2 string) (*models.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := edge{user1, user2}
	if _, exists := r.s.matches[key]; exists {
		return nil, common.ErrorAlreadyExists
	}
	m := &models.Match{ID: uuid.NewString(), User1ID: user1, User2ID: user2, CreatedAt: time.Now()}
	r.s.matches[key] = m
	cp := *m
	return &cp, nil
}

func (r *MatchRepository) GetByPair(ctx context.Context, user1, user2 string) (*models.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.matches[edge{user1, user2}]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *MatchRepository) ListForUser(ctx context.Context, userID string) ([]*models.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*models.Match
	for _, m := range r.s.matches {
		if m.HasUser(userID) {
			cp := *m
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

// MatchCount returns the number of stored matches. Test helper.
func (s *Store) MatchCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.matches)
}

// LikeCount returns the number of stored like edges. Test helper.
func (s *Store) LikeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.likes)
}
