package models

import "time"

// Permission names follow the "can_<action>_<model>" convention and are
// seeded once per model at startup.
type Permission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"createdAt"`
}

// Group collects users so permissions can be granted in bulk.
type Group struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
