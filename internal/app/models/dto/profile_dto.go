package dto

import "time"

// UpdateProfileRequest updates the authenticated user's profile. Nil
// fields are left unchanged.
type UpdateProfileRequest struct {
	Name   *string    `json:"name" binding:"omitempty,min=2,max=128"`
	Bio    *string    `json:"bio" binding:"omitempty,max=500"`
	Avatar *string    `json:"avatar" binding:"omitempty,max=255"`
	DOB    *time.Time `json:"dob"`
}

// ProfileResponse is the public view of a user's profile.
type ProfileResponse struct {
	Username  string               `json:"username"`
	Name      *string              `json:"name,omitempty"`
	Bio       *string              `json:"bio,omitempty"`
	Avatar    *string              `json:"avatar,omitempty"`
	DOB       *time.Time           `json:"dob,omitempty"`
	JoinedAt  time.Time            `json:"joinedAt"`
	Follows   *FollowStatsResponse `json:"follows,omitempty"`
	FollowedByMe bool              `json:"followedByMe"`
}
