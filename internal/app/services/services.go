package services

import (
	"github.com/rs/zerolog"

	appAuth "github.com/chimailo/algorice/internal/app/auth"
	"github.com/chimailo/algorice/internal/app/repositories"
	"github.com/chimailo/algorice/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService    *AuthService
	UserService    *UserService
	ProfileService *ProfileService
	PostService    *PostService
	CommentService *CommentService
	AdminService   *AdminService
	Authorization  *appAuth.AuthorizationService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, logger zerolog.Logger) *Services {
	authz := appAuth.NewAuthorizationService(
		repos.PermissionRepository,
		repos.PostRepository,
		repos.CommentRepository,
		logger,
	)

	return &Services{
		AuthService: NewAuthService(
			repos.UserRepository,
			repos.ProfileRepository,
			repos.GroupRepository,
			jwtService,
			logger,
		),
		UserService: NewUserService(
			repos.UserRepository,
			repos.FollowRepository,
			logger,
		),
		ProfileService: NewProfileService(
			repos.UserRepository,
			repos.ProfileRepository,
			repos.FollowRepository,
			logger,
		),
		PostService: NewPostService(
			repos.PostRepository,
			repos.UserRepository,
			repos.CommentRepository,
			repos.LikeRepository,
			authz,
			logger,
		),
		CommentService: NewCommentService(
			repos.CommentRepository,
			repos.PostRepository,
			repos.UserRepository,
			repos.LikeRepository,
			authz,
			logger,
		),
		AdminService: NewAdminService(
			repos.UserRepository,
			repos.ProfileRepository,
			repos.PermissionRepository,
			logger,
		),
		Authorization: authz,
	}
}
