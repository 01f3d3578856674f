package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/chimailo/algorice/internal/app/models"
	"github.com/chimailo/algorice/internal/app/models/dto"
	"github.com/chimailo/algorice/internal/app/repositories"
	"github.com/chimailo/algorice/internal/pkg/apperrors"
	"github.com/chimailo/algorice/internal/pkg/helpers"
)

// IUserService defines the social-graph and per-user listing operations
type IUserService interface {
	Follow(ctx context.Context, followerID, followedID int64) error
	Unfollow(ctx context.Context, followerID, followedID int64) error
	Followers(ctx context.Context, userID int64, page, size int) ([]dto.UserSummary, dto.PaginationInfo, error)
	Following(ctx context.Context, userID int64, page, size int) ([]dto.UserSummary, dto.PaginationInfo, error)
	FollowersOf(ctx context.Context, username string, page, size int) ([]dto.UserSummary, dto.PaginationInfo, error)
	FollowingOf(ctx context.Context, username string, page, size int) ([]dto.UserSummary, dto.PaginationInfo, error)
}

// UserService manages the follower graph and user-centred listings.
type UserService struct {
	userRepo   repositories.IUserRepository
	followRepo repositories.IFollowRepository
	logger     zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repositories.IUserRepository,
	followRepo repositories.IFollowRepository,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
		logger:     logger,
	}
}

// Follow creates the edge. Following yourself is rejected; following
// someone twice is a no-op.
func (s *UserService) Follow(ctx context.Context, followerID, followedID int64) error {
	if followerID == followedID {
		return apperrors.ErrSelfFollow
	}

	if _, err := s.userRepo.GetByID(ctx, followedID); err != nil {
		return err
	}

	return s.followRepo.Follow(ctx, followerID, followedID)
}

// Unfollow removes the edge; unfollowing someone you don't follow is a
// no-op.
func (s *UserService) Unfollow(ctx context.Context, followerID, followedID int64) error {
	if _, err := s.userRepo.GetByID(ctx, followedID); err != nil {
		return err
	}

	return s.followRepo.Unfollow(ctx, followerID, followedID)
}

// Followers returns a page of the user's followers.
func (s *UserService) Followers(ctx context.Context, userID int64, page, size int) ([]dto.UserSummary, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	users, total, err := s.followRepo.Followers(ctx, userID, int(offset), limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return toUserSummaries(users), helpers.NewPaginationInfo(total, page, size), nil
}

// Following returns a page of the users the user follows.
func (s *UserService) Following(ctx context.Context, userID int64, page, size int) ([]dto.UserSummary, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	users, total, err := s.followRepo.Following(ctx, userID, int(offset), limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return toUserSummaries(users), helpers.NewPaginationInfo(total, page, size), nil
}

// FollowersOf resolves a username and returns a page of their followers.
func (s *UserService) FollowersOf(ctx context.Context, username string, page, size int) ([]dto.UserSummary, dto.PaginationInfo, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return s.Followers(ctx, user.ID, page, size)
}

// FollowingOf resolves a username and returns a page of who they follow.
func (s *UserService) FollowingOf(ctx context.Context, username string, page, size int) ([]dto.UserSummary, dto.PaginationInfo, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return s.Following(ctx, user.ID, page, size)
}

func toUserSummaries(users []*models.User) []dto.UserSummary {
	summaries := make([]dto.UserSummary, 0, len(users))
	for _, u := range users {
		summary := dto.UserSummary{ID: u.ID, Username: u.Username}
		if u.Profile != nil {
			summary.Name = u.Profile.Name
			summary.Avatar = u.Profile.Avatar
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
