package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/chimailo/algorice/internal/app/models/dto"
	"github.com/chimailo/algorice/internal/app/repositories"
)

// IProfileService defines the profile operations
type IProfileService interface {
	GetByUsername(ctx context.Context, username string, viewerID int64) (*dto.ProfileResponse, error)
	Update(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	DeleteAccount(ctx context.Context, userID int64) error
}

// ProfileService handles profile pages and account removal.
type ProfileService struct {
	userRepo    repositories.IUserRepository
	profileRepo repositories.IProfileRepository
	followRepo  repositories.IFollowRepository
	logger      zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	userRepo repositories.IUserRepository,
	profileRepo repositories.IProfileRepository,
	followRepo repositories.IFollowRepository,
	logger zerolog.Logger,
) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		followRepo:  followRepo,
		logger:      logger,
	}
}

// GetByUsername builds a profile page: display fields, graph counts and
// whether the viewer already follows the profile's owner.
func (s *ProfileService) GetByUsername(ctx context.Context, username string, viewerID int64) (*dto.ProfileResponse, error) {
	user, err := s.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepo.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	followedByMe := false
	if viewerID != 0 && viewerID != user.ID {
		followedByMe, err = s.followRepo.IsFollowing(ctx, viewerID, user.ID)
		if err != nil {
			return nil, err
		}
	}

	profile := user.Profile
	return &dto.ProfileResponse{
		Username: user.Username,
		Name:     profile.Name,
		Bio:      profile.Bio,
		Avatar:   profile.Avatar,
		DOB:      profile.DOB,
		JoinedAt: user.CreatedAt,
		Follows: &dto.FollowStatsResponse{
			Followers: followers,
			Following: following,
		},
		FollowedByMe: followedByMe,
	}, nil
}

// Update applies the non-nil fields of the request to the caller's profile.
func (s *ProfileService) Update(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		profile.Name = req.Name
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.Avatar != nil {
		profile.Avatar = req.Avatar
	}
	if req.DOB != nil {
		profile.DOB = req.DOB
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		Username: user.Username,
		Name:     profile.Name,
		Bio:      profile.Bio,
		Avatar:   profile.Avatar,
		DOB:      profile.DOB,
		JoinedAt: user.CreatedAt,
	}, nil
}

// DeleteAccount removes the caller's account. The schema cascades the
// profile, content, likes, edges and grants.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", userID).Msg("Account deleted")
	return nil
}
