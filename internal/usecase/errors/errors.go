package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden access")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

// Scheduling errors
var (
	ErrSchedulingFailed       = errors.New("failed to schedule meeting")
	ErrInvalidMeetingRequest  = errors.New("invalid meeting request")
	ErrEmptyParticipants      = errors.New("participant list must not be empty")
	ErrInvalidDuration        = errors.New("duration must be positive")
	ErrBlankTitle             = errors.New("title must not be blank")
	ErrMeetingRequestNotFound = errors.New("meeting request not found")
	ErrSlotNotFound           = errors.New("suggested slot not found")
	ErrSlotMismatch           = errors.New("slot does not belong to this meeting request")
	ErrAlreadyConfirmed       = errors.New("meeting request already confirmed")
	ErrNotOrganizer           = errors.New("user is not the organizer of this meeting request")
)

// User errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserNotActive    = errors.New("user is not active")
	ErrEmailAlreadyUsed = errors.New("email already in use")
)
