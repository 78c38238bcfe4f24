// This file implements AuthService: registration, login and the
// access/refresh token pair lifecycle. Refresh tokens are opaque random
// strings; only their keyed fingerprint reaches storage.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophmatch/internal/common"
	"github.com/dmitrijs2005/gophmatch/internal/dbx"
	"github.com/dmitrijs2005/gophmatch/internal/logging"
	"github.com/dmitrijs2005/gophmatch/internal/server/auth"
	"github.com/dmitrijs2005/gophmatch/internal/server/config"
	"github.com/dmitrijs2005/gophmatch/internal/server/credentials"
	"github.com/dmitrijs2005/gophmatch/internal/server/models"
	"github.com/dmitrijs2005/gophmatch/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const minPasswordLength = 8

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	SessionID        string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// RegisterInput carries signup fields. Role defaults to common.DefaultRole.
type RegisterInput struct {
	Email        string
	Password     string
	Role         string
	Skills       []string
	Availability string
	DeviceID     string
}

// AuthService provides authentication-related operations:
// - Register / Login: create or verify accounts and mint a token pair
// - Refresh: rotate a refresh token and mint a new access token
// - Revoke / Logout: end sessions
// - Authenticate: verify an access token
type AuthService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	credentials    *credentials.Store
	log            logging.Logger
	jwtSecret      []byte
	pepper         []byte
	accessTTL      time.Duration
	refreshTTL     time.Duration
	storageTimeout time.Duration
	now            func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger, cfg *config.Config) *AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &AuthService{
		db:             db,
		repomanager:    m,
		credentials:    credentials.NewStore(cfg.BcryptCost),
		log:            log.With("module", "auth"),
		jwtSecret:      []byte(cfg.SecretKey),
		pepper:         []byte(cfg.RefreshTokenPepper),
		accessTTL:      cfg.AccessTokenValidityDuration,
		refreshTTL:     cfg.RefreshTokenValidityDuration,
		storageTimeout: cfg.StorageTimeout,
		now:            time.Now,
	}
}

// Register creates a user and opens its first session in one transaction.
// A taken email yields common.ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, *TokenPair, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, nil, err
	}
	if len(in.Password) < minPasswordLength {
		return nil, nil, fmt.Errorf("%w: password shorter than %d bytes", common.ErrorValidation, minPasswordLength)
	}

	hash, err := s.credentials.Hash(in.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = common.DefaultRole
	}
	user := &models.User{
		Email:         email,
		PasswordHash:  hash,
		Role:          role,
		Skills:        in.Skills,
		Availability:  in.Availability,
		BehaviorScore: common.DefaultBehaviorScore,
	}

	ctx, cancel := withStorageTimeout(ctx, s.storageTimeout)
	defer cancel()

	var pair *TokenPair
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return common.ErrEmailTaken
			}
			return err
		}
		user = created

		pair, err = s.issuePair(ctx, tx, user, in.DeviceID)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, nil, err
		}
		return nil, nil, unavailable(err)
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID, "session_id", pair.SessionID)
	return user, pair, nil
}

// Login verifies credentials and opens a new session. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password, deviceID string) (*models.User, *TokenPair, error) {
	ctx, cancel := withStorageTimeout(ctx, s.storageTimeout)
	defer cancel()

	users := s.repomanager.Users(s.db)

	user, err := users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.credentials.Verify(password, s.getDummyHash())
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, unavailable(err)
	}
	if !s.credentials.Verify(password, user.PasswordHash) {
		return nil, nil, common.ErrorUnauthorized
	}

	if err := users.TouchLastActive(ctx, user.ID, s.now()); err != nil {
		return nil, nil, unavailable(err)
	}

	pair, err := s.issuePair(ctx, s.db, user, deviceID)
	if err != nil {
		return nil, nil, unavailable(err)
	}
	return user, pair, nil
}

// IssuePair opens a new session for user and returns its token pair.
func (s *AuthService) IssuePair(ctx context.Context, user *models.User, deviceID string) (*TokenPair, error) {
	ctx, cancel := withStorageTimeout(ctx, s.storageTimeout)
	defer cancel()

	pair, err := s.issuePair(ctx, s.db, user, deviceID)
	if err != nil {
		return nil, unavailable(err)
	}
	return pair, nil
}

// Refresh exchanges a refresh token for a new pair. The presented token is
// single use: the session fingerprint is swapped with a compare-and-swap, so
// of two concurrent presentations at most one wins. The loser revokes the
// session, since one of the two holders is not the legitimate client.
func (s *AuthService) Refresh(ctx context.Context, raw string) (*TokenPair, error) {
	if raw == "" {
		return nil, common.ErrUnknownSession
	}

	ctx, cancel := withStorageTimeout(ctx, s.storageTimeout)
	defer cancel()

	sessions := s.repomanager.Sessions(s.db)
	fp := auth.Fingerprint(raw, s.pepper)

	sess, err := sessions.FindByFingerprint(ctx, fp)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnknownSession
		}
		return nil, unavailable(err)
	}

	now := s.now()
	if sess.Revoked() {
		return nil, common.ErrRevokedSession
	}
	if sess.ExpiredAt(now) {
		return nil, common.ErrExpiredSession
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnknownSession
		}
		return nil, unavailable(err)
	}

	newRaw := auth.NewRefreshToken()
	expiresAt := now.Add(s.refreshTTL)

	won, err := sessions.Rotate(ctx, sess.ID, fp, auth.Fingerprint(newRaw, s.pepper), expiresAt, now)
	if err != nil {
		return nil, unavailable(err)
	}
	if !won {
		s.log.Warn(ctx, "refresh token presented concurrently, revoking session", "session_id", sess.ID, "user_id", sess.UserID)
		if err := sessions.Revoke(ctx, sess.ID, now); err != nil && !errors.Is(err, common.ErrorNotFound) {
			return nil, unavailable(err)
		}
		return nil, common.ErrRevokedSession
	}

	access, accessExp, err := s.accessToken(user, now)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:      access,
		RefreshToken:     newRaw,
		SessionID:        sess.ID,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: expiresAt,
	}, nil
}

// Revoke ends the session with id sessionID. Revoking twice is not an error.
func (s *AuthService) Revoke(ctx context.Context, sessionID string) error {
	ctx, cancel := withStorageTimeout(ctx, s.storageTimeout)
	defer cancel()

	return s.revoke(ctx, sessionID)
}

// RevokeOwned revokes sessionID only if it belongs to userID. Sessions of
// other users look unknown.
func (s *AuthService) RevokeOwned(ctx context.Context, userID, sessionID string) error {
	ctx, cancel := withStorageTimeout(ctx, s.storageTimeout)
	defer cancel()

	sess, err := s.repomanager.Sessions(s.db).Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrUnknownSession
		}
		return unavailable(err)
	}
	if sess.UserID != userID {
		return common.ErrUnknownSession
	}
	return s.revoke(ctx, sessionID)
}

func (s *AuthService) revoke(ctx context.Context, sessionID string) error {
	if err := s.repomanager.Sessions(s.db).Revoke(ctx, sessionID, s.now()); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrUnknownSession
		}
		return unavailable(err)
	}
	s.log.Info(ctx, "session revoked", "session_id", sessionID)
	return nil
}

// RevokeAll ends every active session of userID and returns how many were ended.
func (s *AuthService) RevokeAll(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := withStorageTimeout(ctx, s.storageTimeout)
	defer cancel()

	n, err := s.repomanager.Sessions(s.db).RevokeAllForUser(ctx, userID, s.now())
	if err != nil {
		return 0, unavailable(err)
	}
	return n, nil
}

// Logout revokes the session raw belongs to. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, raw string) error {
	if raw == "" {
		return nil
	}

	ctx, cancel := withStorageTimeout(ctx, s.storageTimeout)
	defer cancel()

	sess, err := s.repomanager.Sessions(s.db).FindByFingerprint(ctx, auth.Fingerprint(raw, s.pepper))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return unavailable(err)
	}
	return s.revoke(ctx, sess.ID)
}

// PurgeExpired deletes sessions that expired before the given time.
func (s *AuthService) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	ctx, cancel := withStorageTimeout(ctx, s.storageTimeout)
	defer cancel()

	n, err := s.repomanager.Sessions(s.db).DeleteExpired(ctx, before)
	if err != nil {
		return 0, unavailable(err)
	}
	return n, nil
}

// Authenticate verifies an access token and returns the identity it carries.
func (s *AuthService) Authenticate(token string) (auth.Identity, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return auth.Identity{}, err
	}
	return auth.Identity{UserID: claims.UserID, Role: claims.Role}, nil
}

// --- helpers below ---

func (s *AuthService) issuePair(ctx context.Context, db dbx.DBTX, user *models.User, deviceID string) (*TokenPair, error) {
	now := s.now()

	access, accessExp, err := s.accessToken(user, now)
	if err != nil {
		return nil, err
	}

	if deviceID == "" {
		deviceID = uuid.NewString()
	}
	raw := auth.NewRefreshToken()
	sess := &models.Session{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		DeviceID:    deviceID,
		Fingerprint: auth.Fingerprint(raw, s.pepper),
		IssuedAt:    now,
		ExpiresAt:   now.Add(s.refreshTTL),
	}
	if err := s.repomanager.Sessions(db).Create(ctx, sess); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:      access,
		RefreshToken:     raw,
		SessionID:        sess.ID,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: sess.ExpiresAt,
	}, nil
}

func (s *AuthService) accessToken(user *models.User, now time.Time) (string, time.Time, error) {
	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.accessTTL)
	if err != nil {
		return "", time.Time{}, common.ErrorInternal
	}
	return token, now.Add(s.accessTTL), nil
}

// getDummyHash returns a hash at the configured cost used to equalize login
// timing for unknown emails.
func (s *AuthService) getDummyHash() string {
	s.dummyOnce.Do(func() {
		pw, err := common.MakeRandHexString(16)
		if err != nil {
			return
		}
		if h, err := s.credentials.Hash(pw); err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return "", fmt.Errorf("%w: invalid email", common.ErrorValidation)
	}
	return email, nil
}
