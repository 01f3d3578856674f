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
	"github.com/chimailo/algorice/internal/pkg/helpers"
	"github.com/chimailo/algorice/internal/pkg/validation"
)

// IAdminService defines the administrative user-management operations
type IAdminService interface {
	ListUsers(ctx context.Context, page, size int) ([]dto.AdminUserResponse, dto.PaginationInfo, error)
	GetUser(ctx context.Context, userID int64) (*dto.AdminUserResponse, error)
	CreateUser(ctx context.Context, req dto.AdminCreateUserRequest) (*dto.AdminUserResponse, error)
	UpdateUser(ctx context.Context, userID int64, req dto.AdminUpdateUserRequest) (*dto.AdminUserResponse, error)
	DeleteUser(ctx context.Context, userID int64) error
	GrantPermissions(ctx context.Context, userID int64, permIDs []int64) error
	RevokePermissions(ctx context.Context, userID int64, permIDs []int64) error
	ListPermissions(ctx context.Context) ([]*models.Permission, error)
}

// AdminService manages accounts and permission grants on behalf of
// administrators.
type AdminService struct {
	userRepo       repositories.IUserRepository
	profileRepo    repositories.IProfileRepository
	permissionRepo repositories.IPermissionRepository
	logger         zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	userRepo repositories.IUserRepository,
	profileRepo repositories.IProfileRepository,
	permissionRepo repositories.IPermissionRepository,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		permissionRepo: permissionRepo,
		logger:         logger,
	}
}

// ListUsers returns a page of all accounts, newest first.
func (s *AdminService) ListUsers(ctx context.Context, page, size int) ([]dto.AdminUserResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	users, total, err := s.userRepo.List(ctx, int(offset), limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	responses := make([]dto.AdminUserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toAdminUserResponse(u, nil))
	}
	return responses, helpers.NewPaginationInfo(total, page, size), nil
}

// GetUser returns one account with its effective permission names.
func (s *AdminService) GetUser(ctx context.Context, userID int64) (*dto.AdminUserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	perms, err := s.permissionRepo.UserPermissionNames(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := toAdminUserResponse(user, perms)
	return &resp, nil
}

// CreateUser opens an account directly, with the active/admin flags the
// registration flow never exposes.
func (s *AdminService) CreateUser(ctx context.Context, req dto.AdminCreateUserRequest) (*dto.AdminUserResponse, error) {
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
		return nil, err
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		IsActive: true,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}

	name := strings.TrimSpace(req.Name)
	profile := &models.Profile{Name: &name}

	if err := s.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User created by admin")
	resp := toAdminUserResponse(user, nil)
	return &resp, nil
}

// UpdateUser applies the non-nil account and profile fields. Username
// uniqueness is re-checked by the store.
func (s *AdminService) UpdateUser(ctx context.Context, userID int64, req dto.AdminUpdateUserRequest) (*dto.AdminUserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if !validation.ValidUsername(username) {
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
				"username may only contain letters, digits and underscores")
		}
		user.Username = username
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if req.Name != nil || req.Bio != nil {
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
		if err := s.profileRepo.Update(ctx, profile); err != nil {
			return nil, err
		}
	}

	s.logger.Info().Int64("userID", userID).Msg("User updated by admin")
	return s.GetUser(ctx, userID)
}

// DeleteUser removes an account and everything that cascades from it.
func (s *AdminService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", userID).Msg("User deleted by admin")
	return nil
}

// GrantPermissions grants direct permissions by id; unknown ids are
// rejected, re-grants are no-ops.
func (s *AdminService) GrantPermissions(ctx context.Context, userID int64, permIDs []int64) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	perms, err := s.permissionRepo.GetByIDs(ctx, permIDs)
	if err != nil {
		return err
	}
	if len(perms) != len(permIDs) {
		return apperrors.ErrPermissionNotFound
	}

	return s.permissionRepo.GrantToUser(ctx, userID, permIDs)
}

// RevokePermissions removes direct grants; absent grants are no-ops.
func (s *AdminService) RevokePermissions(ctx context.Context, userID int64, permIDs []int64) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	return s.permissionRepo.RevokeFromUser(ctx, userID, permIDs)
}

// ListPermissions returns the full permission catalogue.
func (s *AdminService) ListPermissions(ctx context.Context) ([]*models.Permission, error) {
	return s.permissionRepo.List(ctx)
}

func toAdminUserResponse(u *models.User, perms []string) dto.AdminUserResponse {
	return dto.AdminUserResponse{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		IsActive:        u.IsActive,
		IsAdmin:         u.IsAdmin,
		SignInCount:     u.SignInCount,
		CurrentSignInOn: u.CurrentSignInOn,
		LastSignInOn:    u.LastSignInOn,
		CreatedAt:       u.CreatedAt,
		Permissions:     perms,
	}
}
