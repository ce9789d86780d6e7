package services

import (
	"context"

	"swipe_server/metrics"
	"swipe_server/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FeedService builds discovery feeds from the profile store and the swipe ledger.
type FeedService struct {
	Profiles *ProfileStore
	Ledger   *SwipeLedger
	logger   *zap.Logger
}

// NewFeedService wires a FeedService.
func NewFeedService(profiles *ProfileStore, ledger *SwipeLedger, logger *zap.Logger) *FeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedService{Profiles: profiles, Ledger: ledger, logger: logger.Named("feed")}
}

// Generate returns the candidates for requester: profiles in the same zone,
// excluding the requester and anyone the requester already swiped on.
// Candidates are ordered by profile creation time.
func (fs *FeedService) Generate(ctx context.Context, requester uuid.UUID) ([]models.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	me, err := fs.Profiles.Get(requester)
	if err != nil {
		return nil, err
	}
	seen := fs.Ledger.TargetsSeenBy(requester)

	feed := []models.UserProfile{}
	for _, candidate := range fs.Profiles.All() {
		if candidate.ZoneID != me.ZoneID {
			continue
		}
		if candidate.ID == requester {
			continue
		}
		if _, swiped := seen[candidate.ID]; swiped {
			continue
		}
		feed = append(feed, candidate)
	}

	metrics.FeedSize.Observe(float64(len(feed)))
	fs.logger.Debug("feed generated",
		zap.Stringer("user", requester),
		zap.String("zone", me.ZoneID),
		zap.Int("candidates", len(feed)))
	return feed, nil
}
