package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/chimailo/algorice/internal/app/models"
	"github.com/chimailo/algorice/internal/app/models/dto"
	"github.com/chimailo/algorice/internal/app/repositories"
	"github.com/chimailo/algorice/internal/pkg/apperrors"
	"github.com/chimailo/algorice/internal/pkg/auth"
	"github.com/chimailo/algorice/internal/pkg/validation"
)

// IAuthService defines the authentication operations
type IAuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req dto.LoginRequest, ip string) (*dto.TokenResponse, error)
	CurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error)
	UsernameAvailable(ctx context.Context, username string) (bool, error)
	EmailAvailable(ctx context.Context, email string) (bool, error)
}

// AuthService handles registration, login and the current-user lookup.
type AuthService struct {
	userRepo    repositories.IUserRepository
	profileRepo repositories.IProfileRepository
	groupRepo   repositories.IGroupRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	profileRepo repositories.IProfileRepository,
	groupRepo repositories.IGroupRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		groupRepo:   groupRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Register opens an account, places it in the members group and returns a
// token so the client is signed in immediately.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validation.ValidUsername(username) {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			"username may only contain letters, digits and underscores")
	}
	if !validation.ValidEmail(email) {
		return nil, apperrors.ErrInvalidEmail
	}
	if !validation.ValidPassword(req.Password) {
		return nil, apperrors.ErrInvalidPassword
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		IsActive: true,
	}
	profile := &models.Profile{Name: &name}

	// Uniqueness is settled by the store's constraints, not a pre-check, so
	// two racing registrations can't both win.
	if err := s.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	if group, err := s.groupRepo.GetByName(ctx, "members"); err == nil {
		if err := s.groupRepo.AddMember(ctx, group.ID, user.ID); err != nil {
			s.logger.Warn().Err(err).Int64("userID", user.ID).
				Msg("Failed to add new user to members group")
		}
	}

	s.logger.Info().Int64("userID", user.ID).Str("username", username).Msg("User registered")
	return s.issueToken(user.ID)
}

// Login verifies credentials against the username-or-email identity and
// records the sign-in before issuing a token.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest, ip string) (*dto.TokenResponse, error) {
	identity := strings.TrimSpace(req.Identity)

	user, err := s.userRepo.FindByIdentity(ctx, identity)
	if err != nil {
		// A missing account and a bad password look identical to the caller.
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.userRepo.RecordSignIn(ctx, user.ID, ip); err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to record sign-in")
	}

	return s.issueToken(user.ID)
}

func (s *AuthService) issueToken(userID int64) (*dto.TokenResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to generate token")
		return nil, err
	}
	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		TokenType: "Bearer",
	}, nil
}

// CurrentUser returns the authenticated user's own account view.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		IsActive:     user.IsActive,
		IsAdmin:      user.IsAdmin,
		SignInCount:  user.SignInCount,
		LastSignInOn: user.LastSignInOn,
		CreatedAt:    user.CreatedAt,
	}

	if profile, err := s.profileRepo.GetByUserID(ctx, userID); err == nil {
		resp.Profile = &dto.ProfileResponse{
			Username: user.Username,
			Name:     profile.Name,
			Bio:      profile.Bio,
			Avatar:   profile.Avatar,
			DOB:      profile.DOB,
			JoinedAt: user.CreatedAt,
		}
	}

	return resp, nil
}

// UsernameAvailable reports whether the username is free to register.
func (s *AuthService) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	exists, err := s.userRepo.UsernameExists(ctx, strings.TrimSpace(username))
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// EmailAvailable reports whether the email is free to register.
func (s *AuthService) EmailAvailable(ctx context.Context, email string) (bool, error) {
	exists, err := s.userRepo.EmailExists(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return false, err
	}
	return !exists, nil
}
