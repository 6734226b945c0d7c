package domain

import "time"

type User struct {
	ID           uint
	Email        string
	ProfileImage string
}

type Session struct {
	Token     string
	UserID    uint
	ExpiresAt time.Time
}

// ProfileImageURLRequest is the payload of the url upload form. A nil ImageURL
// means the field was absent.
type ProfileImageURLRequest struct {
	ImageURL *string `json:"imageUrl"`
}

type UploadOutcome string

const (
	OutcomePersisted      UploadOutcome = "persisted"
	OutcomeFallbackStored UploadOutcome = "fallback_stored"
)

type UploadResult struct {
	Reference string
	Outcome   UploadOutcome
	// Cause is the fetch or persist failure that led to the fallback.
	Cause error
}
