package services

import (
	"context"

	"github.com/rs/zerolog"

	appAuth "github.com/chimailo/algorice/internal/app/auth"
	"github.com/chimailo/algorice/internal/app/models"
	"github.com/chimailo/algorice/internal/app/models/dto"
	"github.com/chimailo/algorice/internal/app/repositories"
	"github.com/chimailo/algorice/internal/pkg/apperrors"
	"github.com/chimailo/algorice/internal/pkg/helpers"
)

// ICommentService defines the comment-thread operations
type ICommentService interface {
	Create(ctx context.Context, postID int64, parentID *int64, userID int64, req dto.CommentRequest) (*dto.CommentResponse, error)
	Update(ctx context.Context, postID, commentID, userID int64, req dto.CommentRequest) (*dto.CommentResponse, error)
	Delete(ctx context.Context, postID, commentID, userID int64) error
	ToggleLike(ctx context.Context, postID, commentID, userID int64) (*dto.LikeResponse, error)
	ListByPost(ctx context.Context, postID, viewerID int64, page, size int) ([]dto.CommentResponse, dto.PaginationInfo, error)
	ListReplies(ctx context.Context, postID, parentID, viewerID int64, page, size int) ([]dto.CommentResponse, dto.PaginationInfo, error)
	CommentsOf(ctx context.Context, username string, viewerID int64, page, size int) ([]dto.CommentResponse, dto.PaginationInfo, error)
}

// CommentService handles threaded comments and their like toggles.
type CommentService struct {
	commentRepo repositories.ICommentRepository
	postRepo    repositories.IPostRepository
	userRepo    repositories.IUserRepository
	likeRepo    repositories.ILikeRepository
	authz       *appAuth.AuthorizationService
	logger      zerolog.Logger
}

// NewCommentService creates a new CommentService
func NewCommentService(
	commentRepo repositories.ICommentRepository,
	postRepo repositories.IPostRepository,
	userRepo repositories.IUserRepository,
	likeRepo repositories.ILikeRepository,
	authz *appAuth.AuthorizationService,
	logger zerolog.Logger,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		likeRepo:    likeRepo,
		authz:       authz,
		logger:      logger,
	}
}

// Create adds a comment to a post, or a reply when parentID is set. The
// parent must exist and belong to the same post.
func (s *CommentService) Create(ctx context.Context, postID int64, parentID *int64, userID int64, req dto.CommentRequest) (*dto.CommentResponse, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrPostNotFound
	}

	if parentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != postID {
			return nil, apperrors.ErrCommentMismatch
		}
	}

	comment := &models.Comment{
		Body:      req.Body,
		UserID:    userID,
		PostID:    postID,
		CommentID: parentID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("commentID", comment.ID).Int64("postID", postID).
		Int64("userID", userID).Msg("Comment created")
	return s.getResponse(ctx, comment.ID, userID)
}

// Update replaces the body; only the author may do this.
func (s *CommentService) Update(ctx context.Context, postID, commentID, userID int64, req dto.CommentRequest) (*dto.CommentResponse, error) {
	if err := s.validateOnPost(ctx, postID, commentID); err != nil {
		return nil, err
	}
	if err := s.authz.ValidateCommentOwnership(ctx, commentID, userID); err != nil {
		return nil, err
	}

	comment := &models.Comment{ID: commentID, Body: req.Body}
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return s.getResponse(ctx, commentID, userID)
}

// Delete removes the comment; only the author may do this. Replies stay
// and fall back to the post root.
func (s *CommentService) Delete(ctx context.Context, postID, commentID, userID int64) error {
	if err := s.validateOnPost(ctx, postID, commentID); err != nil {
		return err
	}
	if err := s.authz.ValidateCommentOwnership(ctx, commentID, userID); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}

	s.logger.Info().Int64("commentID", commentID).Int64("userID", userID).Msg("Comment deleted")
	return nil
}

// ToggleLike likes the comment, or unlikes it when already liked.
func (s *CommentService) ToggleLike(ctx context.Context, postID, commentID, userID int64) (*dto.LikeResponse, error) {
	if err := s.validateOnPost(ctx, postID, commentID); err != nil {
		return nil, err
	}

	liked, err := s.likeRepo.ToggleCommentLike(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}

	likes, err := s.likeRepo.CountCommentLikes(ctx, commentID)
	if err != nil {
		return nil, err
	}

	return &dto.LikeResponse{Liked: liked, Likes: likes}, nil
}

// ListByPost returns a page of a post's top-level comments.
func (s *CommentService) ListByPost(ctx context.Context, postID, viewerID int64, page, size int) ([]dto.CommentResponse, dto.PaginationInfo, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	if !exists {
		return nil, dto.PaginationInfo{}, apperrors.ErrPostNotFound
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	comments, total, err := s.commentRepo.ListByPost(ctx, postID, int(offset), limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	responses, err := s.buildResponses(ctx, comments, viewerID)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return responses, helpers.NewPaginationInfo(total, page, size), nil
}

// ListReplies returns a page of direct replies to a comment on a post.
func (s *CommentService) ListReplies(ctx context.Context, postID, parentID, viewerID int64, page, size int) ([]dto.CommentResponse, dto.PaginationInfo, error) {
	if err := s.validateOnPost(ctx, postID, parentID); err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	comments, total, err := s.commentRepo.ListReplies(ctx, parentID, int(offset), limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	responses, err := s.buildResponses(ctx, comments, viewerID)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return responses, helpers.NewPaginationInfo(total, page, size), nil
}

// CommentsOf returns a page of a user's comments by username.
func (s *CommentService) CommentsOf(ctx context.Context, username string, viewerID int64, page, size int) ([]dto.CommentResponse, dto.PaginationInfo, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	comments, total, err := s.commentRepo.ListByUser(ctx, user.ID, int(offset), limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	responses, err := s.buildResponses(ctx, comments, viewerID)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return responses, helpers.NewPaginationInfo(total, page, size), nil
}

// validateOnPost checks the comment exists and belongs to the post named
// in the route.
func (s *CommentService) validateOnPost(ctx context.Context, postID, commentID int64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.PostID != postID {
		return apperrors.ErrCommentMismatch
	}
	return nil
}

func (s *CommentService) getResponse(ctx context.Context, commentID, viewerID int64) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	responses, err := s.buildResponses(ctx, []*models.Comment{comment}, viewerID)
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// buildResponses decorates comments with like counts, reply counts and
// the viewer's like state, batching one query per concern.
func (s *CommentService) buildResponses(ctx context.Context, comments []*models.Comment, viewerID int64) ([]dto.CommentResponse, error) {
	ids := make([]int64, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}

	likeCounts, err := s.likeRepo.CommentLikeCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	replyCounts, err := s.commentRepo.ReplyCountsByCommentIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	likedByMe := make(map[int64]bool)
	if viewerID != 0 {
		likedByMe, err = s.likeRepo.CommentsLikedBy(ctx, viewerID, ids)
		if err != nil {
			return nil, err
		}
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		author := dto.UserSummary{ID: c.UserID}
		if c.Author != nil {
			author.ID = c.Author.ID
			author.Username = c.Author.Username
			if c.Author.Profile != nil {
				author.Name = c.Author.Profile.Name
				author.Avatar = c.Author.Profile.Avatar
			}
		}

		responses = append(responses, dto.CommentResponse{
			ID:        c.ID,
			Body:      c.Body,
			Author:    author,
			PostID:    c.PostID,
			ParentID:  c.CommentID,
			Likes:     likeCounts[c.ID],
			LikedByMe: likedByMe[c.ID],
			Replies:   replyCounts[c.ID],
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return responses, nil
}
