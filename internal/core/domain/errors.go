package domain

import "errors"

// Sentinel errors shared across services. The HTTP layer maps each of these
// to a deterministic status code and response message.
var (
	ErrUserExists    = errors.New("user already exists")
	ErrUserNotFound  = errors.New("no user found")
	ErrWrongPassword = errors.New("wrong password")

	// ErrNotOwner covers both "record missing" and "owned by someone else"
	// for owned resources. The two cases are intentionally indistinguishable
	// to the client and both surface as 403.
	ErrNotOwner = errors.New("not the resource owner")

	ErrLocationNotFound   = errors.New("location not found")
	ErrFilterNotFound     = errors.New("filter not found")
	ErrAssessmentNotFound = errors.New("no assessments found for this location")
	ErrImageMetaNotFound  = errors.New("no image metadata found for this location")
)
