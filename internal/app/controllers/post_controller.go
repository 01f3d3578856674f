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

// PostController handles posts, their comment threads and like toggles
type PostController struct {
	postService    services.IPostService
	commentService services.ICommentService
	logger         zerolog.Logger
}

// NewPostController creates a new PostController
func NewPostController(
	postService services.IPostService,
	commentService services.ICommentService,
	logger zerolog.Logger,
) *PostController {
	return &PostController{
		postService:    postService,
		commentService: commentService,
		logger:         logger,
	}
}

// Create creates a post
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePostRequest true "Post body and optional tags"
// @Success 201 {object} dto.APIResponse{data=dto.PostResponse}
// @Failure 422 {object} dto.ErrorResponse
// @Router /posts [post]
func (c *PostController) Create(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	post, err := c.postService.Create(ctx.Request.Context(), userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post))
}

// Get returns one post
// @Summary Get a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id} [get]
func (c *PostController) Get(ctx *gin.Context) {
	postID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	post, err := c.postService.GetByID(ctx.Request.Context(), postID, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// Update updates a post
// @Summary Update a post
// @Description Only the author may update a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.UpdatePostRequest true "New body"
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse}
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id} [put]
func (c *PostController) Update(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	postID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	post, err := c.postService.Update(ctx.Request.Context(), postID, userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// Delete deletes a post
// @Summary Delete a post
// @Description Only the author may delete a post; its comments and likes go with it
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id} [delete]
func (c *PostController) Delete(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	postID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.postService.Delete(ctx.Request.Context(), postID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Post deleted."))
}

// ToggleLike toggles the caller's like on a post
// @Summary Like or unlike a post
// @Description Likes the post, or removes the like when it is already there
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.LikeResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id}/likes [post]
func (c *PostController) ToggleLike(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	postID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	like, err := c.postService.ToggleLike(ctx.Request.Context(), postID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(like))
}

// Comments lists a post's top-level comments
// @Summary List a post's comments
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param page path int true "Page number"
// @Success 200 {object} dto.APIResponse{data=[]dto.CommentResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id}/comments/page/{page} [get]
func (c *PostController) Comments(ctx *gin.Context) {
	postID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page := helpers.ParsePageParam(ctx, "page")
	comments, pagination, err := c.commentService.ListByPost(
		ctx.Request.Context(), postID, middleware.GetUserID(ctx), page, 0)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(comments, pagination))
}

// Replies lists the direct replies to a comment
// @Summary List replies to a comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param commentId path int true "Comment ID"
// @Param page path int true "Page number"
// @Success 200 {object} dto.APIResponse{data=[]dto.CommentResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id}/comments/{commentId}/replies/page/{page} [get]
func (c *PostController) Replies(ctx *gin.Context) {
	postID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	commentID, err := parseIDParam(ctx, "commentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page := helpers.ParsePageParam(ctx, "page")
	replies, pagination, err := c.commentService.ListReplies(
		ctx.Request.Context(), postID, commentID, middleware.GetUserID(ctx), page, 0)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(replies, pagination))
}

// CreateComment adds a comment to a post, or a reply to a comment
// @Summary Comment on a post
// @Description With a commentId the new comment becomes a reply to it; the parent must belong to the same post
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param commentId path int false "Parent comment ID"
// @Param request body dto.CommentRequest true "Comment body"
// @Success 201 {object} dto.APIResponse{data=dto.CommentResponse}
// @Failure 400 {object} dto.ErrorResponse "Parent comment on a different post"
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id}/comments [post]
func (c *PostController) CreateComment(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	postID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var parentID *int64
	if ctx.Param("commentId") != "" {
		id, err := parseIDParam(ctx, "commentId")
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		parentID = &id
	}

	var req dto.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	comment, err := c.commentService.Create(ctx.Request.Context(), postID, parentID, userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(comment))
}

// UpdateComment updates a comment
// @Summary Update a comment
// @Description Only the author may update a comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param commentId path int true "Comment ID"
// @Param request body dto.CommentRequest true "New body"
// @Success 200 {object} dto.APIResponse{data=dto.CommentResponse}
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id}/comments/{commentId} [put]
func (c *PostController) UpdateComment(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	postID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	commentID, err := parseIDParam(ctx, "commentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	comment, err := c.commentService.Update(ctx.Request.Context(), postID, commentID, userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(comment))
}

// DeleteComment deletes a comment
// @Summary Delete a comment
// @Description Only the author may delete a comment; replies stay and reattach to the post root
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id}/comments/{commentId} [delete]
func (c *PostController) DeleteComment(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	postID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	commentID, err := parseIDParam(ctx, "commentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.commentService.Delete(ctx.Request.Context(), postID, commentID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Comment deleted."))
}

// ToggleCommentLike toggles the caller's like on a comment
// @Summary Like or unlike a comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} dto.APIResponse{data=dto.LikeResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id}/comments/{commentId}/likes [post]
func (c *PostController) ToggleCommentLike(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	postID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	commentID, err := parseIDParam(ctx, "commentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	like, err := c.commentService.ToggleLike(ctx.Request.Context(), postID, commentID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(like))
}
