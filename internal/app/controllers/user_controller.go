package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/chimailo/algorice/internal/app/models/dto"
	"github.com/chimailo/algorice/internal/app/services"
	"github.com/chimailo/algorice/internal/middleware"
	"github.com/chimailo/algorice/internal/pkg/apperrors"
	"github.com/chimailo/algorice/internal/pkg/helpers"
)

// UserController handles the follower graph and user-centred listings
type UserController struct {
	userService    services.IUserService
	postService    services.IPostService
	commentService services.ICommentService
	logger         zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(
	userService services.IUserService,
	postService services.IPostService,
	commentService services.ICommentService,
	logger zerolog.Logger,
) *UserController {
	return &UserController{
		userService:    userService,
		postService:    postService,
		commentService: commentService,
		logger:         logger,
	}
}

// Follow follows a user
// @Summary Follow a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID to follow"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Self-follow"
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/follow/{id} [post]
func (c *UserController) Follow(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	targetID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.userService.Follow(ctx.Request.Context(), userID, targetID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Followed."))
}

// Unfollow unfollows a user
// @Summary Unfollow a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID to unfollow"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/unfollow/{id} [post]
func (c *UserController) Unfollow(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	targetID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.userService.Unfollow(ctx.Request.Context(), userID, targetID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Unfollowed."))
}

// Followers lists the caller's followers
// @Summary List your followers
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Success 200 {object} dto.APIResponse{data=[]dto.UserSummary}
// @Router /users/followers [get]
func (c *UserController) Followers(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	users, pagination, err := c.userService.Followers(ctx.Request.Context(), userID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(users, pagination))
}

// Following lists who the caller follows
// @Summary List who you follow
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Success 200 {object} dto.APIResponse{data=[]dto.UserSummary}
// @Router /users/following [get]
func (c *UserController) Following(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	users, pagination, err := c.userService.Following(ctx.Request.Context(), userID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(users, pagination))
}

// LikedPosts lists the posts the caller has liked
// @Summary List posts you liked
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Success 200 {object} dto.APIResponse{data=[]dto.PostResponse}
// @Router /users/likes [get]
func (c *UserController) LikedPosts(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	posts, pagination, err := c.postService.LikedPosts(ctx.Request.Context(), userID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(posts, pagination))
}

// FollowersOf lists a named user's followers
// @Summary List a user's followers
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param page path int true "Page number"
// @Success 200 {object} dto.APIResponse{data=[]dto.UserSummary}
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{username}/followers/page/{page} [get]
func (c *UserController) FollowersOf(ctx *gin.Context) {
	page := helpers.ParsePageParam(ctx, "page")
	users, pagination, err := c.userService.FollowersOf(
		ctx.Request.Context(), ctx.Param("username"), page, 0)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(users, pagination))
}

// FollowingOf lists who a named user follows
// @Summary List who a user follows
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param page path int true "Page number"
// @Success 200 {object} dto.APIResponse{data=[]dto.UserSummary}
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{username}/following/page/{page} [get]
func (c *UserController) FollowingOf(ctx *gin.Context) {
	page := helpers.ParsePageParam(ctx, "page")
	users, pagination, err := c.userService.FollowingOf(
		ctx.Request.Context(), ctx.Param("username"), page, 0)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(users, pagination))
}

// PostsOf lists a named user's posts
// @Summary List a user's posts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param page path int true "Page number"
// @Success 200 {object} dto.APIResponse{data=[]dto.PostResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{username}/posts/page/{page} [get]
func (c *UserController) PostsOf(ctx *gin.Context) {
	page := helpers.ParsePageParam(ctx, "page")
	posts, pagination, err := c.postService.PostsOf(
		ctx.Request.Context(), ctx.Param("username"), middleware.GetUserID(ctx), page, 0)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(posts, pagination))
}

// CommentsOf lists a named user's comments
// @Summary List a user's comments
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param page path int true "Page number"
// @Success 200 {object} dto.APIResponse{data=[]dto.CommentResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{username}/comments/page/{page} [get]
func (c *UserController) CommentsOf(ctx *gin.Context) {
	page := helpers.ParsePageParam(ctx, "page")
	comments, pagination, err := c.commentService.CommentsOf(
		ctx.Request.Context(), ctx.Param("username"), middleware.GetUserID(ctx), page, 0)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(comments, pagination))
}

// LikedPostsOf lists the posts a named user has liked
// @Summary List posts a user liked
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param page path int true "Page number"
// @Success 200 {object} dto.APIResponse{data=[]dto.PostResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{username}/likes/page/{page} [get]
func (c *UserController) LikedPostsOf(ctx *gin.Context) {
	page := helpers.ParsePageParam(ctx, "page")
	posts, pagination, err := c.postService.LikedPostsOf(
		ctx.Request.Context(), ctx.Param("username"), middleware.GetUserID(ctx), page, 0)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(posts, pagination))
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError("invalid " + name + " parameter")
	}
	return id, nil
}
