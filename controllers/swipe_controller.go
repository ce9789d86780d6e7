package controllers

import (
	"net/http"

	"swipe_server/models"
	"swipe_server/services"
	"swipe_server/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SwipeController handles swipes, match listings and pending likes
type SwipeController struct {
	SwipeService *services.SwipeService
	logger       *zap.Logger
}

// NewSwipeController initializes the controller
func NewSwipeController(swipeService *services.SwipeService, logger *zap.Logger) *SwipeController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SwipeController{SwipeService: swipeService, logger: logger.Named("swipe")}
}

// HandleSwipe handles POST /swipe
func (c *SwipeController) HandleSwipe(w http.ResponseWriter, r *http.Request) {
	var req models.SwipeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	action, ok := models.ParseSwipeAction(req.Action)
	if !ok {
		utils.WriteErrors(w, http.StatusUnprocessableEntity, []models.ErrorDetail{{
			Code:    models.ErrorCodeInvalidAction,
			Message: "action must be LIKE or PASS",
			Field:   "action",
		}})
		return
	}

	// The uuid tag already checked both identifiers.
	swiper := uuid.MustParse(req.SwiperID)
	swiped := uuid.MustParse(req.SwipedID)

	isMatch, err := c.SwipeService.Process(r.Context(), swiper, swiped, action)
	if err != nil {
		writeServiceError(w, c.logger, err)
		return
	}

	c.logger.Debug("swipe processed",
		zap.Stringer("swiper", swiper),
		zap.Stringer("swiped", swiped),
		zap.String("action", string(action)),
		zap.Bool("is_match", isMatch))
	utils.WriteData(w, http.StatusCreated, models.SwipeResponse{IsMatch: isMatch}, -1)
}

// GetMatches handles GET /matches?user_id=
func (c *SwipeController) GetMatches(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUserID(w, r.URL.Query().Get("user_id"), "user_id")
	if !ok {
		return
	}

	matches, err := c.SwipeService.Matches(r.Context(), id)
	if err != nil {
		writeServiceError(w, c.logger, err)
		return
	}
	utils.WriteData(w, http.StatusOK, matches, len(matches))
}

// GetNewLikes handles GET /likes?user_id=
func (c *SwipeController) GetNewLikes(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUserID(w, r.URL.Query().Get("user_id"), "user_id")
	if !ok {
		return
	}

	likes, err := c.SwipeService.NewLikes(r.Context(), id)
	if err != nil {
		writeServiceError(w, c.logger, err)
		return
	}
	utils.WriteData(w, http.StatusOK, likes, len(likes))
}
