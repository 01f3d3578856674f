package auth

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/chimailo/algorice/internal/app/models"
	"github.com/chimailo/algorice/internal/app/repositories"
	"github.com/chimailo/algorice/internal/pkg/apperrors"
)

// AuthorizationService resolves a user's effective permissions and performs
// ownership checks on content.
type AuthorizationService struct {
	permissionRepo repositories.IPermissionRepository
	postRepo       repositories.IPostRepository
	commentRepo    repositories.ICommentRepository
	logger         zerolog.Logger
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(
	permissionRepo repositories.IPermissionRepository,
	postRepo repositories.IPostRepository,
	commentRepo repositories.ICommentRepository,
	logger zerolog.Logger,
) *AuthorizationService {
	return &AuthorizationService{
		permissionRepo: permissionRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		logger:         logger,
	}
}

// EffectivePermissions returns the union of the user's direct grants and
// the grants of every group the user belongs to, keyed by name.
func (s *AuthorizationService) EffectivePermissions(ctx context.Context, userID int64) (map[string]models.Permission, error) {
	direct, err := s.permissionRepo.DirectPermissions(ctx, userID)
	if err != nil {
		return nil, err
	}

	grouped, err := s.permissionRepo.GroupPermissions(ctx, userID)
	if err != nil {
		return nil, err
	}

	perms := make(map[string]models.Permission, len(direct)+len(grouped))
	for _, p := range direct {
		perms[p.Name] = *p
	}
	for _, p := range grouped {
		perms[p.Name] = *p
	}
	return perms, nil
}

// HasPermission reports whether the user holds the named permission.
// Unknown names and lookup failures both resolve to false; authorization
// never grants on error.
func (s *AuthorizationService) HasPermission(ctx context.Context, userID int64, name string) bool {
	perms, err := s.EffectivePermissions(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Str("permission", name).
			Msg("Permission lookup failed, denying")
		return false
	}

	_, ok := perms[name]
	return ok
}

// HasAllPermissions reports whether the user holds every named permission.
func (s *AuthorizationService) HasAllPermissions(ctx context.Context, userID int64, names ...string) bool {
	perms, err := s.EffectivePermissions(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).
			Msg("Permission lookup failed, denying")
		return false
	}

	for _, name := range names {
		if _, ok := perms[name]; !ok {
			return false
		}
	}
	return true
}

// ValidatePostOwnership allows only the author to mutate a post.
func (s *AuthorizationService) ValidatePostOwnership(ctx context.Context, postID, userID int64) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidateCommentOwnership allows only the author to mutate a comment.
func (s *AuthorizationService) ValidateCommentOwnership(ctx context.Context, commentID, userID int64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
