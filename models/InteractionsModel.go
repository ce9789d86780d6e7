package models

import (
	"time"

	"github.com/google/uuid"
)

// Swipe is the latest decision one profile made about another.
// There is at most one Swipe per ordered (SwiperID, SwipedID) pair.
type Swipe struct {
	SwiperID  uuid.UUID   `json:"swiper_id"` // Actor
	SwipedID  uuid.UUID   `json:"swiped_id"` // Target
	Action    SwipeAction `json:"action"`    // LIKE or PASS
	Timestamp time.Time   `json:"timestamp"` // Time of the most recent decision
}

// SwipeRequest is the body of POST /swipe
type SwipeRequest struct {
	SwiperID string `json:"swiper_id" validate:"required,uuid_rfc4122"`
	SwipedID string `json:"swiped_id" validate:"required,uuid_rfc4122"`
	Action   string `json:"action" validate:"required"`
}

// SwipeResponse is the data returned by POST /swipe
type SwipeResponse struct {
	IsMatch bool `json:"is_match"`
}
