package models

import "time"

// Match pairs two users. User1ID < User2ID always holds; see CanonicalPair.
type Match struct {
	ID        string
	User1ID   string
	User2ID   string
	CreatedAt time.Time
}

// CanonicalPair orders two user ids so that both participants of a pair map
// to the same uniqueness key.
func CanonicalPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// HasUser reports whether userID is one of the two participants.
func (m *Match) HasUser(userID string) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// OtherUser returns the participant that is not userID.
func (m *Match) OtherUser(userID string) (string, bool) {
	switch userID {
	case m.User1ID:
		return m.User2ID, true
	case m.User2ID:
		return m.User1ID, true
	}
	return "", false
}

// MatchOutcome is the result kind of a like.
type MatchOutcome int

const (
	NoMatch MatchOutcome = iota
	NewMatch
	AlreadyMatched
)

func (o MatchOutcome) String() string {
	switch o {
	case NewMatch:
		return "new_match"
	case AlreadyMatched:
		return "already_matched"
	default:
		return "no_match"
	}
}

// LikeResult is returned by the match coordinator. Match is nil for NoMatch.
type LikeResult struct {
	Outcome MatchOutcome
	Match   *Match
}
