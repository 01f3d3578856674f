package models

import "time"

// User represents a registered account. Credentials and activity tracking
// live here; display data lives on the associated Profile.
type User struct {
	ID              int64      `json:"id"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	Password        string     `json:"-"`
	IsActive        bool       `json:"isActive"`
	IsAdmin         bool       `json:"isAdmin"`
	SignInCount     int        `json:"signInCount"`
	CurrentSignInOn *time.Time `json:"currentSignInOn,omitempty"`
	CurrentSignInIP *string    `json:"currentSignInIp,omitempty"`
	LastSignInOn    *time.Time `json:"lastSignInOn,omitempty"`
	LastSignInIP    *string    `json:"lastSignInIp,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`

	Profile *Profile `json:"profile,omitempty"`
}
