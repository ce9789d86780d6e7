package models

import (
	"time"

	"github.com/google/uuid"
)

// Match is a confirmed mutual LIKE. User1ID always sorts before User2ID.
type Match struct {
	MatchID   uuid.UUID `json:"match_id"`
	User1ID   uuid.UUID `json:"user1_id"`
	User2ID   uuid.UUID `json:"user2_id"`
	Timestamp time.Time `json:"timestamp"`
}

// HasUser reports whether id is one of the two participants.
func (m Match) HasUser(id uuid.UUID) bool {
	return m.User1ID == id || m.User2ID == id
}

// OtherUser returns the participant that is not id.
func (m Match) OtherUser(id uuid.UUID) (uuid.UUID, bool) {
	switch id {
	case m.User1ID:
		return m.User2ID, true
	case m.User2ID:
		return m.User1ID, true
	}
	return uuid.Nil, false
}
