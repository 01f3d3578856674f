package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/chimailo/algorice/internal/app/models/dto"
	"github.com/chimailo/algorice/internal/app/services"
	"github.com/chimailo/algorice/internal/middleware"
	"github.com/chimailo/algorice/internal/pkg/helpers"
)

// AdminController handles administrative user management
type AdminController struct {
	adminService services.IAdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.IAdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// ListUsers lists all accounts
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]dto.AdminUserResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	users, pagination, err := c.adminService.ListUsers(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(users, pagination))
}

// GetUser returns one account with its permissions
// @Summary Get a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.AdminUserResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/users/{id} [get]
func (c *AdminController) GetUser(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.adminService.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// CreateUser creates an account
// @Summary Create a user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AdminCreateUserRequest true "Account details"
// @Success 201 {object} dto.APIResponse{data=dto.AdminUserResponse}
// @Failure 400 {object} dto.ErrorResponse "Username or email already taken"
// @Failure 422 {object} dto.ErrorResponse
// @Router /admin/users [post]
func (c *AdminController) CreateUser(ctx *gin.Context) {
	var req dto.AdminCreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	user, err := c.adminService.CreateUser(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(user))
}

// UpdateUser updates an account
// @Summary Update a user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.AdminUpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.AdminUserResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/users/{id} [put]
func (c *AdminController) UpdateUser(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.AdminUpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	user, err := c.adminService.UpdateUser(ctx.Request.Context(), userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// DeleteUser deletes an account
// @Summary Delete a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.adminService.DeleteUser(ctx.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("User deleted."))
}

// GrantPermissions grants direct permissions to a user
// @Summary Grant permissions
// @Description Granting an already-held permission is a no-op
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.PermissionIDsRequest true "Permission ids"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/users/{id}/permissions [put]
func (c *AdminController) GrantPermissions(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.PermissionIDsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.adminService.GrantPermissions(ctx.Request.Context(), userID, req.PermissionIDs); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Permissions granted."))
}

// RevokePermissions removes direct permissions from a user
// @Summary Revoke permissions
// @Description Revoking a permission the user doesn't hold is a no-op
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.PermissionIDsRequest true "Permission ids"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/users/{id}/permissions [delete]
func (c *AdminController) RevokePermissions(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.PermissionIDsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.adminService.RevokePermissions(ctx.Request.Context(), userID, req.PermissionIDs); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Permissions revoked."))
}

// ListPermissions returns the permission catalogue
// @Summary List permissions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /admin/permissions [get]
func (c *AdminController) ListPermissions(ctx *gin.Context) {
	perms, err := c.adminService.ListPermissions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(perms))
}
