package services

import (
	"sync"
	"time"

	"swipe_server/models"
	"swipe_server/utils"

	"github.com/google/uuid"
)

// MatchRegistry holds at most one Match per unordered pair of profiles.
type MatchRegistry struct {
	mu      sync.RWMutex
	matches []models.Match
	byPair  map[utils.PairKey]int // index into matches
	byUser  map[uuid.UUID][]int   // indexes into matches, creation order
	newID   func() uuid.UUID
	now     func() time.Time
}

// NewMatchRegistry returns an empty registry.
func NewMatchRegistry() *MatchRegistry {
	return &MatchRegistry{
		byPair: make(map[utils.PairKey]int),
		byUser: make(map[uuid.UUID][]int),
		newID:  uuid.New,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// RecordIfAbsent returns the match for the pair, creating it when none exists.
// created is false when the pair was already matched.
func (r *MatchRegistry) RecordIfAbsent(a, b uuid.UUID) (match models.Match, created bool) {
	key := utils.CanonicalPair(a, b)

	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, ok := r.byPair[key]; ok {
		return r.matches[idx], false
	}

	match = models.Match{
		MatchID:   r.newID(),
		User1ID:   key.Low,
		User2ID:   key.High,
		Timestamp: r.now(),
	}
	idx := len(r.matches)
	r.matches = append(r.matches, match)
	r.byPair[key] = idx
	r.byUser[key.Low] = append(r.byUser[key.Low], idx)
	r.byUser[key.High] = append(r.byUser[key.High], idx)
	return match, true
}

// MatchesFor returns every match involving id in creation order.
func (r *MatchRegistry) MatchesFor(id uuid.UUID) []models.Match {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Match, 0, len(r.byUser[id]))
	for _, idx := range r.byUser[id] {
		out = append(out, r.matches[idx])
	}
	return out
}

// Count returns the number of stored matches.
func (r *MatchRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.matches)
}
