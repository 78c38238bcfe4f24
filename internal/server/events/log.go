package events

import (
	"context"

	"github.com/dmitrijs2005/gophmatch/internal/logging"
)

// LogPublisher writes match events to the log. Used when Redis is not configured.
type LogPublisher struct {
	log logging.Logger
}

func NewLogPublisher(log logging.Logger) *LogPublisher {
	if log == nil {
		log = logging.Nop()
	}
	return &LogPublisher{log: log.With("module", "events")}
}

func (p *LogPublisher) PublishMatch(ctx context.Context, ev MatchEvent) error {
	p.log.Info(ctx, "match created",
		"match_id", ev.MatchID,
		"user1_id", ev.User1ID,
		"user2_id", ev.User2ID,
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
