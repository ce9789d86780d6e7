package services

import (
	"context"
	"sync"

	"swipe_server/metrics"
	"swipe_server/models"
	"swipe_server/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MatchNotifier is told about every newly created match.
type MatchNotifier interface {
	NotifyMatch(ctx context.Context, match models.Match)
}

// SwipeService records swipes and detects mutual likes.
type SwipeService struct {
	Profiles *ProfileStore
	Ledger   *SwipeLedger
	Registry *MatchRegistry
	Notifier MatchNotifier

	locks  pairLocks
	logger *zap.Logger
}

// NewSwipeService wires a SwipeService. notifier may be nil.
func NewSwipeService(profiles *ProfileStore, ledger *SwipeLedger, registry *MatchRegistry, notifier MatchNotifier, logger *zap.Logger) *SwipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SwipeService{
		Profiles: profiles,
		Ledger:   ledger,
		Registry: registry,
		Notifier: notifier,
		locks:    pairLocks{locks: make(map[utils.PairKey]*pairLock)},
		logger:   logger.Named("swipe"),
	}
}

// Process records the swipe and reports whether the pair is now a mutual match.
// A LIKE toward someone who already likes the actor always reports true, whether
// the match was created by this call or existed before. The notifier runs after
// the pair is released.
func (ss *SwipeService) Process(ctx context.Context, actor, target uuid.UUID, action models.SwipeAction) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	isMatch, match, created, err := ss.record(actor, target, action)
	if err != nil {
		return false, err
	}
	if created {
		metrics.MatchesCreated.Inc()
		ss.logger.Info("match created",
			zap.Stringer("match", match.MatchID),
			zap.Stringer("user1", match.User1ID),
			zap.Stringer("user2", match.User2ID))
		if ss.Notifier != nil {
			ss.Notifier.NotifyMatch(ctx, match)
		}
	}
	return isMatch, nil
}

// record writes the swipe and checks for a reciprocal LIKE while holding the pair lock.
func (ss *SwipeService) record(actor, target uuid.UUID, action models.SwipeAction) (isMatch bool, match models.Match, created bool, err error) {
	unlock := ss.locks.lock(utils.CanonicalPair(actor, target))
	defer unlock()

	if _, err := ss.Ledger.Record(actor, target, action); err != nil {
		ss.logger.Debug("swipe rejected", zap.Stringer("actor", actor), zap.Stringer("target", target), zap.Error(err))
		return false, models.Match{}, false, err
	}
	if action != models.SwipeActionLike {
		return false, models.Match{}, false, nil
	}

	reverse, ok := ss.Ledger.DecisionOf(target, actor)
	if !ok || reverse != models.SwipeActionLike {
		return false, models.Match{}, false, nil
	}

	match, created = ss.Registry.RecordIfAbsent(actor, target)
	return true, match, created, nil
}

// Matches returns the matches of user in creation order.
func (ss *SwipeService) Matches(ctx context.Context, user uuid.UUID) ([]models.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := ss.Profiles.Get(user); err != nil {
		return nil, err
	}
	return ss.Registry.MatchesFor(user), nil
}

// NewLikes returns the profiles that like user and that user has not swiped on yet.
func (ss *SwipeService) NewLikes(ctx context.Context, user uuid.UUID) ([]models.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := ss.Profiles.Get(user); err != nil {
		return nil, err
	}

	seen := ss.Ledger.TargetsSeenBy(user)
	likes := []models.UserProfile{}
	for _, liker := range ss.Ledger.LikersOf(user) {
		if _, answered := seen[liker]; answered {
			continue
		}
		profile, err := ss.Profiles.Get(liker)
		if err != nil {
			continue
		}
		likes = append(likes, profile)
	}
	return likes, nil
}

// pairLocks serializes work on one unordered pair. Entries are dropped once
// no goroutine holds or waits on them.
type pairLocks struct {
	mu    sync.Mutex
	locks map[utils.PairKey]*pairLock
}

type pairLock struct {
	sync.Mutex
	refs int
}

func (p *pairLocks) lock(key utils.PairKey) (unlock func()) {
	p.mu.Lock()
	l, ok := p.locks[key]
	if !ok {
		l = &pairLock{}
		p.locks[key] = l
	}
	l.refs++
	p.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		p.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(p.locks, key)
		}
		p.mu.Unlock()
	}
}
