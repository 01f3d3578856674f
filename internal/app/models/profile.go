package models

import "time"

// Profile holds the public-facing details of a user. Created together with
// the user and removed by cascade when the account is deleted.
type Profile struct {
	ID        int64      `json:"id"`
	Name      *string    `json:"name,omitempty"`
	Bio       *string    `json:"bio,omitempty"`
	Avatar    *string    `json:"avatar,omitempty"`
	DOB       *time.Time `json:"dob,omitempty"`
	UserID    int64      `json:"userId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
