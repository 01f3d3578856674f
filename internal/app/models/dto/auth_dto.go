package dto

// RegisterRequest carries the fields needed to open an account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=128"`
	Username string `json:"username" binding:"required,min=3,max=32"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest accepts a username or an email in the identity field.
type LoginRequest struct {
	Identity string `json:"identity" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CheckUsernameRequest probes username availability before registration.
type CheckUsernameRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
}

// CheckEmailRequest probes email availability before registration.
type CheckEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// TokenResponse is returned on successful register/login.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
	TokenType string `json:"tokenType"`
}
