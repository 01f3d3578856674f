package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/chimailo/algorice/internal/app/models/dto"
	"github.com/chimailo/algorice/internal/app/services"
	"github.com/chimailo/algorice/internal/middleware"
)

// ProfileController handles profile pages and account removal
type ProfileController struct {
	profileService services.IProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.IProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		logger:         logger,
	}
}

// Get returns a user's profile page
// @Summary Get a profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /profile/{username} [get]
func (c *ProfileController) Get(ctx *gin.Context) {
	profile, err := c.profileService.GetByUsername(
		ctx.Request.Context(), ctx.Param("username"), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// Update updates the caller's profile
// @Summary Update your profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse}
// @Failure 422 {object} dto.ErrorResponse
// @Router /profile [put]
func (c *ProfileController) Update(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	profile, err := c.profileService.Update(ctx.Request.Context(), userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// Delete removes the caller's account
// @Summary Delete your account
// @Description Removes the account; posts, comments, likes and follow edges are removed with it
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /profile [delete]
func (c *ProfileController) Delete(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	if err := c.profileService.DeleteAccount(ctx.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Account deleted."))
}
