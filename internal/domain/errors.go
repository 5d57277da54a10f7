package domain

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrAttendanceNotFound = errors.New("attendance not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrDraftNotFound      = errors.New("draft not found")
	ErrUploadNotFound     = errors.New("upload not found")
)

var (
	ErrNoAvailableSpots = errors.New("no available spots")
	ErrAlreadyAttending = errors.New("user already attends this event")
	ErrAlreadyFollowing = errors.New("user is already followed")
	ErrNotFollowing     = errors.New("user is not followed")
	ErrAlreadyLiked     = errors.New("post is already liked")
	ErrNotLiked         = errors.New("post is not liked")
)

// Ошибки мастера создания события.
var (
	ErrDraftClosed      = errors.New("draft is closed")
	ErrDraftAlreadyOpen = errors.New("draft is already open")
	ErrStepMismatch     = errors.New("form does not belong to the active step")
	ErrNoPreviousStep   = errors.New("already at the first step")
	ErrNotFinalStep     = errors.New("draft can only be submitted from the final step")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrForbidden     = errors.New("forbidden")
)

var (
	ErrValidation = errors.New("validation error")
)
