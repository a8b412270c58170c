package models

import "errors"

var (
	// Event errors
	ErrEventNotFound      = errors.New("event not found")
	ErrAlreadyParticipant = errors.New("user is already a participant in this event")
	ErrNotParticipant     = errors.New("user is not a participant in this event")
	ErrCapacityExceeded   = errors.New("event has reached its maximum number of participants")
	ErrAgeRestricted      = errors.New("user age is outside the event age range")

	// Comment errors
	ErrCommentNotFound = errors.New("comment not found")

	// User errors
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileCooldown = errors.New("profile was updated within the last 30 days")

	// Category errors
	ErrCategoryNotFound = errors.New("category not found")

	// General errors
	ErrNotAuthenticated = errors.New("authentication required")
	ErrNotAuthorized    = errors.New("caller lacks the required role")
	ErrInvalidInput     = errors.New("invalid input")
	ErrDatabase         = errors.New("database error")
)
