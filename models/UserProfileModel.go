package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile is a discoverable user. Profiles are immutable once created.
type UserProfile struct {
	ID        uuid.UUID `json:"id"`         // Assigned at creation
	Name      string    `json:"name"`       // Display name
	Age       int       `json:"age"`        // Always positive
	Gender    string    `json:"gender"`     // Free-form label
	ZoneID    string    `json:"zone_id"`    // Opaque zone label used by the feed
	CreatedAt time.Time `json:"created_at"` // Insertion time
}

// CreateUserProfileRequest is the body of POST /users
type CreateUserProfileRequest struct {
	Name   string `json:"name" validate:"required"`
	Age    int    `json:"age" validate:"required,gt=0"`
	Gender string `json:"gender" validate:"required"`
	ZoneID string `json:"zone_id" validate:"required"`
}
