package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	ProfileRepository    *ProfileRepository
	FollowRepository     *FollowRepository
	PostRepository       *PostRepository
	CommentRepository    *CommentRepository
	LikeRepository       *LikeRepository
	PermissionRepository *PermissionRepository
	GroupRepository      *GroupRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		ProfileRepository:    NewProfileRepository(db),
		FollowRepository:     NewFollowRepository(db),
		PostRepository:       NewPostRepository(db),
		CommentRepository:    NewCommentRepository(db),
		LikeRepository:       NewLikeRepository(db),
		PermissionRepository: NewPermissionRepository(db),
		GroupRepository:      NewGroupRepository(db),
	}
}
