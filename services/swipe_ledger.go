package services

import (
	"fmt"
	"sync"
	"time"

	"swipe_server/metrics"
	"swipe_server/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProfileChecker reports whether an identifier names a stored profile.
type ProfileChecker interface {
	Exists(id uuid.UUID) bool
}

type swipeKey struct {
	actor  uuid.UUID
	target uuid.UUID
}

// SwipeLedger keeps the latest decision per ordered (actor, target) pair.
// A repeat swipe overwrites the earlier action and timestamp (last write wins).
type SwipeLedger struct {
	mu      sync.RWMutex
	swipes  map[swipeKey]models.Swipe
	targets map[uuid.UUID][]uuid.UUID // actor -> targets in first-swipe order
	swipers map[uuid.UUID][]uuid.UUID // target -> actors in first-swipe order

	profiles ProfileChecker
	now      func() time.Time
	logger   *zap.Logger
}

// NewSwipeLedger returns an empty ledger that validates references against profiles.
func NewSwipeLedger(profiles ProfileChecker, logger *zap.Logger) *SwipeLedger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SwipeLedger{
		swipes:   make(map[swipeKey]models.Swipe),
		targets:  make(map[uuid.UUID][]uuid.UUID),
		swipers:  make(map[uuid.UUID][]uuid.UUID),
		profiles: profiles,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger.Named("ledger"),
	}
}

// Record validates and stores a swipe. Nothing is written when validation fails.
func (l *SwipeLedger) Record(actor, target uuid.UUID, action models.SwipeAction) (models.Swipe, error) {
	if err := l.validate(actor, target, action); err != nil {
		return models.Swipe{}, err
	}

	swipe := models.Swipe{
		SwiperID:  actor,
		SwipedID:  target,
		Action:    action,
		Timestamp: l.now(),
	}
	key := swipeKey{actor: actor, target: target}

	l.mu.Lock()
	prev, seen := l.swipes[key]
	l.swipes[key] = swipe
	if !seen {
		l.targets[actor] = append(l.targets[actor], target)
		l.swipers[target] = append(l.swipers[target], actor)
	}
	l.mu.Unlock()

	metrics.SwipesRecorded.WithLabelValues(string(action)).Inc()
	if seen && prev.Action != action {
		l.logger.Debug("swipe overwritten",
			zap.Stringer("actor", actor),
			zap.Stringer("target", target),
			zap.String("from", string(prev.Action)),
			zap.String("to", string(action)))
	}
	return swipe, nil
}

func (l *SwipeLedger) validate(actor, target uuid.UUID, action models.SwipeAction) error {
	if actor == target {
		metrics.SwipesRejected.WithLabelValues("self_reference").Inc()
		return fmt.Errorf("user %s: %w", actor, ErrInvalidSelfReference)
	}
	if !l.profiles.Exists(actor) {
		metrics.SwipesRejected.WithLabelValues("unknown_reference").Inc()
		return fmt.Errorf("swiper %s not found: %w", actor, ErrInvalidReference)
	}
	if !l.profiles.Exists(target) {
		metrics.SwipesRejected.WithLabelValues("unknown_reference").Inc()
		return fmt.Errorf("swiped user %s not found: %w", target, ErrInvalidReference)
	}
	if !action.Valid() {
		metrics.SwipesRejected.WithLabelValues("invalid_action").Inc()
		return fmt.Errorf("%q: %w", action, ErrInvalidAction)
	}
	return nil
}

// DecisionOf returns the latest action actor took toward target.
func (l *SwipeLedger) DecisionOf(actor, target uuid.UUID) (models.SwipeAction, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	swipe, ok := l.swipes[swipeKey{actor: actor, target: target}]
	if !ok {
		return "", false
	}
	return swipe.Action, true
}

// TargetsSeenBy returns every identifier actor has swiped on, with any action.
func (l *SwipeLedger) TargetsSeenBy(actor uuid.UUID) map[uuid.UUID]struct{} {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make(map[uuid.UUID]struct{}, len(l.targets[actor]))
	for _, id := range l.targets[actor] {
		seen[id] = struct{}{}
	}
	return seen
}

// SwipesBy returns actor's current decisions in the order the targets were first swiped.
func (l *SwipeLedger) SwipesBy(actor uuid.UUID) []models.Swipe {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Swipe, 0, len(l.targets[actor]))
	for _, target := range l.targets[actor] {
		out = append(out, l.swipes[swipeKey{actor: actor, target: target}])
	}
	return out
}

// LikersOf returns the profiles whose latest decision toward target is LIKE,
// in the order they first swiped on target.
func (l *SwipeLedger) LikersOf(target uuid.UUID) []uuid.UUID {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]uuid.UUID, 0, len(l.swipers[target]))
	for _, actor := range l.swipers[target] {
		if l.swipes[swipeKey{actor: actor, target: target}].Action == models.SwipeActionLike {
			out = append(out, actor)
		}
	}
	return out
}
