package dto

import "time"

// AdminCreateUserRequest lets an administrator open an account directly,
// including flags regular registration never exposes.
type AdminCreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=128"`
	Username string `json:"username" binding:"required,min=3,max=32"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	IsActive *bool  `json:"isActive"`
	IsAdmin  *bool  `json:"isAdmin"`
}

// AdminUpdateUserRequest updates account and profile fields. Nil fields
// are left unchanged.
type AdminUpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=32"`
	Name     *string `json:"name" binding:"omitempty,min=2,max=128"`
	Bio      *string `json:"bio" binding:"omitempty,max=500"`
	IsActive *bool   `json:"isActive"`
	IsAdmin  *bool   `json:"isAdmin"`
}

// PermissionIDsRequest grants or revokes permissions by id.
type PermissionIDsRequest struct {
	PermissionIDs []int64 `json:"permissionIds" binding:"required,min=1"`
}

// AdminUserResponse is the administrative projection of a user.
type AdminUserResponse struct {
	ID              int64      `json:"id"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	IsActive        bool       `json:"isActive"`
	IsAdmin         bool       `json:"isAdmin"`
	SignInCount     int        `json:"signInCount"`
	CurrentSignInOn *time.Time `json:"currentSignInOn,omitempty"`
	LastSignInOn    *time.Time `json:"lastSignInOn,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	Permissions     []string   `json:"permissions,omitempty"`
}
