package controllers

import (
	"net/http"

	"swipe_server/services"
	"swipe_server/utils"

	"go.uber.org/zap"
)

// FeedController serves discovery feeds
type FeedController struct {
	FeedService *services.FeedService
	logger      *zap.Logger
}

// NewFeedController creates a new FeedController instance
func NewFeedController(feedService *services.FeedService, logger *zap.Logger) *FeedController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedController{FeedService: feedService, logger: logger.Named("feed")}
}

// GetFeed handles GET /feed?user_id=
func (c *FeedController) GetFeed(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUserID(w, r.URL.Query().Get("user_id"), "user_id")
	if !ok {
		return
	}

	feed, err := c.FeedService.Generate(r.Context(), id)
	if err != nil {
		writeServiceError(w, c.logger, err)
		return
	}
	utils.WriteData(w, http.StatusOK, feed, len(feed))
}
