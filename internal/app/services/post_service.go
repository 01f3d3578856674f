package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	appAuth "github.com/chimailo/algorice/internal/app/auth"
	"github.com/chimailo/algorice/internal/app/models"
	"github.com/chimailo/algorice/internal/app/models/dto"
	"github.com/chimailo/algorice/internal/app/repositories"
	"github.com/chimailo/algorice/internal/pkg/helpers"
)

// IPostService defines the post operations
type IPostService interface {
	Create(ctx context.Context, userID int64, req dto.CreatePostRequest) (*dto.PostResponse, error)
	GetByID(ctx context.Context, postID, viewerID int64) (*dto.PostResponse, error)
	Update(ctx context.Context, postID, userID int64, req dto.UpdatePostRequest) (*dto.PostResponse, error)
	Delete(ctx context.Context, postID, userID int64) error
	ToggleLike(ctx context.Context, postID, userID int64) (*dto.LikeResponse, error)
	PostsOf(ctx context.Context, username string, viewerID int64, page, size int) ([]dto.PostResponse, dto.PaginationInfo, error)
	LikedPosts(ctx context.Context, userID int64, page, size int) ([]dto.PostResponse, dto.PaginationInfo, error)
	LikedPostsOf(ctx context.Context, username string, viewerID int64, page, size int) ([]dto.PostResponse, dto.PaginationInfo, error)
}

// PostService handles posts, their tags and like toggles.
type PostService struct {
	postRepo    repositories.IPostRepository
	userRepo    repositories.IUserRepository
	commentRepo repositories.ICommentRepository
	likeRepo    repositories.ILikeRepository
	authz       *appAuth.AuthorizationService
	logger      zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo repositories.IPostRepository,
	userRepo repositories.IUserRepository,
	commentRepo repositories.ICommentRepository,
	likeRepo repositories.ILikeRepository,
	authz *appAuth.AuthorizationService,
	logger zerolog.Logger,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		authz:       authz,
		logger:      logger,
	}
}

// Create stores a post with its tags and returns the fresh projection.
func (s *PostService) Create(ctx context.Context, userID int64, req dto.CreatePostRequest) (*dto.PostResponse, error) {
	post := &models.Post{
		Body:   req.Body,
		UserID: userID,
	}

	seen := make(map[string]bool)
	var tags []models.Tag
	for _, name := range req.Tags {
		name = strings.TrimSpace(name)
		slug := helpers.Slugify(name)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		tags = append(tags, models.Tag{Name: name, Slug: slug})
	}

	if err := s.postRepo.Create(ctx, post, tags); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("postID", post.ID).Int64("userID", userID).Msg("Post created")
	return s.GetByID(ctx, post.ID, userID)
}

// GetByID returns the full projection of one post for the viewer.
func (s *PostService) GetByID(ctx context.Context, postID, viewerID int64) (*dto.PostResponse, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	responses, err := s.buildResponses(ctx, []*models.Post{post}, viewerID)
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// Update replaces the body; only the author may do this.
func (s *PostService) Update(ctx context.Context, postID, userID int64, req dto.UpdatePostRequest) (*dto.PostResponse, error) {
	if err := s.authz.ValidatePostOwnership(ctx, postID, userID); err != nil {
		return nil, err
	}

	post := &models.Post{ID: postID, Body: req.Body}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, postID, userID)
}

// Delete removes the post; only the author may do this. Comments and
// likes go with it.
func (s *PostService) Delete(ctx context.Context, postID, userID int64) error {
	if err := s.authz.ValidatePostOwnership(ctx, postID, userID); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	s.logger.Info().Int64("postID", postID).Int64("userID", userID).Msg("Post deleted")
	return nil
}

// ToggleLike likes the post, or unlikes it when already liked.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID int64) (*dto.LikeResponse, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	liked, err := s.likeRepo.TogglePostLike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	likes, err := s.likeRepo.CountPostLikes(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &dto.LikeResponse{Liked: liked, Likes: likes}, nil
}

// PostsOf returns a page of a user's posts by username.
func (s *PostService) PostsOf(ctx context.Context, username string, viewerID int64, page, size int) ([]dto.PostResponse, dto.PaginationInfo, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	posts, total, err := s.postRepo.ListByUser(ctx, user.ID, int(offset), limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	responses, err := s.buildResponses(ctx, posts, viewerID)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return responses, helpers.NewPaginationInfo(total, page, size), nil
}

// LikedPosts returns a page of the posts the caller has liked.
func (s *PostService) LikedPosts(ctx context.Context, userID int64, page, size int) ([]dto.PostResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	posts, total, err := s.postRepo.ListLikedBy(ctx, userID, int(offset), limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	responses, err := s.buildResponses(ctx, posts, userID)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return responses, helpers.NewPaginationInfo(total, page, size), nil
}

// LikedPostsOf returns a page of the posts a named user has liked.
func (s *PostService) LikedPostsOf(ctx context.Context, username string, viewerID int64, page, size int) ([]dto.PostResponse, dto.PaginationInfo, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	posts, total, err := s.postRepo.ListLikedBy(ctx, user.ID, int(offset), limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	responses, err := s.buildResponses(ctx, posts, viewerID)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return responses, helpers.NewPaginationInfo(total, page, size), nil
}

// buildResponses decorates posts with tags, like counts, comment counts
// and the viewer's like state, batching one query per concern.
func (s *PostService) buildResponses(ctx context.Context, posts []*models.Post, viewerID int64) ([]dto.PostResponse, error) {
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	tags, err := s.postRepo.TagsByPostIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	likeCounts, err := s.likeRepo.PostLikeCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	commentCounts, err := s.commentRepo.CountByPostIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	likedByMe := make(map[int64]bool)
	if viewerID != 0 {
		likedByMe, err = s.likeRepo.PostsLikedBy(ctx, viewerID, ids)
		if err != nil {
			return nil, err
		}
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		author := dto.UserSummary{ID: p.UserID}
		if p.Author != nil {
			author.ID = p.Author.ID
			author.Username = p.Author.Username
			if p.Author.Profile != nil {
				author.Name = p.Author.Profile.Name
				author.Avatar = p.Author.Profile.Avatar
			}
		}

		var tagResponses []dto.TagResponse
		for _, t := range tags[p.ID] {
			tagResponses = append(tagResponses, dto.TagResponse{Name: t.Name, Slug: t.Slug})
		}

		responses = append(responses, dto.PostResponse{
			ID:        p.ID,
			Body:      p.Body,
			Author:    author,
			Tags:      tagResponses,
			Likes:     likeCounts[p.ID],
			LikedByMe: likedByMe[p.ID],
			Comments:  commentCounts[p.ID],
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}
	return responses, nil
}
