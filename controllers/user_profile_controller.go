package controllers

import (
	"net/http"

	"swipe_server/models"
	"swipe_server/services"
	"swipe_server/utils"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// UserProfileController handles requests related to user profiles
type UserProfileController struct {
	Profiles *services.ProfileStore
	logger   *zap.Logger
}

// NewUserProfileController creates a new instance of UserProfileController
func NewUserProfileController(profiles *services.ProfileStore, logger *zap.Logger) *UserProfileController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserProfileController{Profiles: profiles, logger: logger.Named("users")}
}

// CreateUserProfile handles POST /users
func (c *UserProfileController) CreateUserProfile(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := c.Profiles.Create(req.Name, req.Age, req.Gender, req.ZoneID)
	if err != nil {
		writeServiceError(w, c.logger, err)
		return
	}

	c.logger.Info("profile created", zap.Stringer("id", profile.ID), zap.String("zone", profile.ZoneID))
	utils.WriteData(w, http.StatusCreated, profile, -1)
}

// GetUserProfileByID handles GET /users/{userId}
func (c *UserProfileController) GetUserProfileByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUserID(w, mux.Vars(r)["userId"], "user_id")
	if !ok {
		return
	}

	profile, err := c.Profiles.Get(id)
	if err != nil {
		writeServiceError(w, c.logger, err)
		return
	}
	utils.WriteData(w, http.StatusOK, profile, -1)
}
