// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/chimailo/algorice/internal/app/models/dto"
	"github.com/chimailo/algorice/internal/app/services"
	"github.com/chimailo/algorice/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.IAuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.IAuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates an account and returns a bearer token so the client is signed in immediately
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration information"
// @Success 201 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 400 {object} dto.ErrorResponse "Username or email already taken"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	token, err := c.authService.Register(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(token))
}

// Login handles user login
// @Summary Log in
// @Description Verifies credentials (username or email + password) and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), req, ctx.ClientIP())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(token))
}

// CurrentUser returns the authenticated user's account
// @Summary Get the current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/user [get]
func (c *AuthController) CurrentUser(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	user, err := c.authService.CurrentUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// Logout acknowledges a sign-out
// @Summary Log out
// @Description Tokens are stateless and stay valid until expiry; clients discard theirs on logout
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /auth/logout [get]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Successfully logged out."))
}

// CheckUsername reports whether a username is available
// @Summary Check username availability
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.CheckUsernameRequest true "Username to check"
// @Success 200 {object} dto.APIResponse
// @Router /auth/check-username [post]
func (c *AuthController) CheckUsername(ctx *gin.Context) {
	var req dto.CheckUsernameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	available, err := c.authService.UsernameAvailable(ctx.Request.Context(), req.Username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"available": available}))
}

// CheckEmail reports whether an email is available
// @Summary Check email availability
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.CheckEmailRequest true "Email to check"
// @Success 200 {object} dto.APIResponse
// @Router /auth/check-email [post]
func (c *AuthController) CheckEmail(ctx *gin.Context) {
	var req dto.CheckEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	available, err := c.authService.EmailAvailable(ctx.Request.Context(), req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"available": available}))
}
