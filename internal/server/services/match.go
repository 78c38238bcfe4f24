// This file implements MatchService, which records likes and turns a pair of
// reciprocal likes into exactly one match.
package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophmatch/internal/common"
	"github.com/dmitrijs2005/gophmatch/internal/dbx"
	"github.com/dmitrijs2005/gophmatch/internal/logging"
	"github.com/dmitrijs2005/gophmatch/internal/server/config"
	"github.com/dmitrijs2005/gophmatch/internal/server/events"
	"github.com/dmitrijs2005/gophmatch/internal/server/models"
	"github.com/dmitrijs2005/gophmatch/internal/server/repositories/repomanager"
)

const publishTimeout = 5 * time.Second

// MatchService is the match coordinator. It keeps no per-pair state in
// process: the uniqueness constraint on the canonical pair decides races.
type MatchService struct {
	db             dbx.DBTX
	repomanager    repomanager.RepositoryManager
	publisher      events.Publisher
	log            logging.Logger
	storageTimeout time.Duration
	now            func() time.Time

	wg sync.WaitGroup
}

func NewMatchService(db dbx.DBTX, m repomanager.RepositoryManager, publisher events.Publisher, log logging.Logger, cfg *config.Config) *MatchService {
	if log == nil {
		log = logging.Nop()
	}
	if publisher == nil {
		publisher = events.NewLogPublisher(log)
	}
	return &MatchService{
		db:             db,
		repomanager:    m,
		publisher:      publisher,
		log:            log.With("module", "match"),
		storageTimeout: cfg.StorageTimeout,
		now:            time.Now,
	}
}

// Like records that actorID likes targetID and reports whether this created a
// match. Losing the creation race to the reciprocal like is reported as
// AlreadyMatched with the winner's match. A recorded like is kept even when
// the match step fails, so retrying is safe.
func (s *MatchService) Like(ctx context.Context, actorID, targetID string) (*models.LikeResult, error) {
	if actorID == "" || targetID == "" {
		return nil, common.ErrUnknownUser
	}
	if actorID == targetID {
		return nil, common.ErrInvalidLikeTarget
	}

	ctx, cancel := withStorageTimeout(ctx, s.storageTimeout)
	defer cancel()

	actor, target, err := s.loadPair(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}
	if actor.ID == target.ID {
		return nil, common.ErrInvalidLikeTarget
	}

	likes := s.repomanager.Likes(s.db)

	created, err := likes.Create(ctx, actor.ID, target.ID, s.now())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnknownUser
		}
		return nil, unavailable(err)
	}
	if created {
		s.log.Debug(ctx, "like recorded", "actor_id", actor.ID, "target_id", target.ID)
	}

	reciprocal, err := likes.Exists(ctx, target.ID, actor.ID)
	if err != nil {
		return nil, unavailable(err)
	}
	if !reciprocal {
		return &models.LikeResult{Outcome: models.NoMatch}, nil
	}

	u1, u2 := models.CanonicalPair(actor.ID, target.ID)
	matches := s.repomanager.Matches(s.db)

	m, err := matches.Create(ctx, u1, u2)
	switch {
	case err == nil:
		s.log.Info(ctx, "match created", "match_id", m.ID, "user1_id", u1, "user2_id", u2)
		s.publish(ctx, m)
		return &models.LikeResult{Outcome: models.NewMatch, Match: m}, nil
	case errors.Is(err, common.ErrorAlreadyExists):
		existing, err := matches.GetByPair(ctx, u1, u2)
		if err != nil {
			return nil, unavailable(err)
		}
		return &models.LikeResult{Outcome: models.AlreadyMatched, Match: existing}, nil
	default:
		s.log.Warn(ctx, "match creation failed", "user1_id", u1, "user2_id", u2, "error", err)
		return nil, unavailable(err)
	}
}

// loadPair fetches both users. The returned ids are the stored ones, which
// keeps canonical ordering stable regardless of how the caller spelled them.
func (s *MatchService) loadPair(ctx context.Context, actorID, targetID string) (*models.User, *models.User, error) {
	users := s.repomanager.Users(s.db)

	actor, err := users.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrUnknownUser
		}
		return nil, nil, unavailable(err)
	}
	target, err := users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrUnknownUser
		}
		return nil, nil, unavailable(err)
	}
	return actor, target, nil
}

// ListMatches returns the matches userID takes part in, newest first.
func (s *MatchService) ListMatches(ctx context.Context, userID string) ([]*models.Match, error) {
	ctx, cancel := withStorageTimeout(ctx, s.storageTimeout)
	defer cancel()

	list, err := s.repomanager.Matches(s.db).ListForUser(ctx, userID)
	if err != nil {
		return nil, unavailable(err)
	}
	return list, nil
}

// ListLikes returns the outgoing likes of userID, newest first.
func (s *MatchService) ListLikes(ctx context.Context, userID string) ([]*models.Like, error) {
	ctx, cancel := withStorageTimeout(ctx, s.storageTimeout)
	defer cancel()

	list, err := s.repomanager.Likes(s.db).ListByLiker(ctx, userID)
	if err != nil {
		return nil, unavailable(err)
	}
	return list, nil
}

// publish hands the event to the publisher in the background. The request
// context is detached so a finished request does not cancel delivery.
func (s *MatchService) publish(ctx context.Context, m *models.Match) {
	ev := events.NewMatchEvent(m)
	base := context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(base, publishTimeout)
		defer cancel()

		if err := s.publisher.PublishMatch(ctx, ev); err != nil {
			s.log.Warn(ctx, "match event publish failed", "match_id", ev.MatchID, "error", err)
		}
	}()
}

// Wait blocks until in-flight event publishes finish.
func (s *MatchService) Wait() {
	s.wg.Wait()
}
