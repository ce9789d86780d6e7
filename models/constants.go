package models

import "strings"

// SwipeAction is the decision a user makes about another profile.
type SwipeAction string

// Swipe actions
const (
	SwipeActionLike SwipeAction = "LIKE"
	SwipeActionPass SwipeAction = "PASS"
)

// Valid reports whether a is one of the known actions.
func (a SwipeAction) Valid() bool {
	return a == SwipeActionLike || a == SwipeActionPass
}

// ParseSwipeAction converts a label to a SwipeAction. Labels are case sensitive.
func ParseSwipeAction(s string) (SwipeAction, bool) {
	a := SwipeAction(strings.TrimSpace(s))
	return a, a.Valid()
}

// Error codes returned in the response envelope
const (
	ErrorCodeInvalidBody          = "invalid_body"
	ErrorCodeNotFound             = "not_found"
	ErrorCodeInvalidReference     = "invalid_reference"
	ErrorCodeInvalidSelfReference = "invalid_self_reference"
	ErrorCodeInvalidAction        = "invalid_action"
	ErrorCodeValidation           = "validation_error"
	ErrorCodeInternal             = "internal_error"
)

// ServiceName is reported by the root endpoint and used in metric names.
const ServiceName = "swipe_server"
