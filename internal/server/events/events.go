// Package events delivers match notifications to out-of-process consumers.
// Delivery is best effort: a failed publish is reported to the caller, who
// logs it and moves on.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dmitrijs2005/gophmatch/internal/server/models"
)

// MatchEvent is the payload emitted when a new match is created.
type MatchEvent struct {
	MatchID   string    `json:"match_id"`
	User1ID   string    `json:"user1_id"`
	User2ID   string    `json:"user2_id"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMatchEvent(m *models.Match) MatchEvent {
	return MatchEvent{
		MatchID:   m.ID,
		User1ID:   m.User1ID,
		User2ID:   m.User2ID,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func (e MatchEvent) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher emits match events.
type Publisher interface {
	PublishMatch(ctx context.Context, ev MatchEvent) error
	Close() error
}
