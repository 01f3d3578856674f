package dto

import "time"

// UserResponse is the authenticated user's own view of their account.
type UserResponse struct {
	ID           int64            `json:"id"`
	Username     string           `json:"username"`
	Email        string           `json:"email"`
	IsActive     bool             `json:"isActive"`
	IsAdmin      bool             `json:"isAdmin"`
	SignInCount  int              `json:"signInCount"`
	LastSignInOn *time.Time       `json:"lastSignInOn,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	Profile      *ProfileResponse `json:"profile,omitempty"`
}

// UserSummary is the compact projection used in listings and as the
// author of posts and comments.
type UserSummary struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Name     *string `json:"name,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// FollowStatsResponse reports graph counts for a profile page.
type FollowStatsResponse struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}
