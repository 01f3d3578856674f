package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chimailo/algorice/internal/app/models"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	args := m.Called(ctx, user, profile)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByIdentity(ctx context.Context, identity string) (*models.User, error) {
	args := m.Called(ctx, identity)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) RecordSignIn(ctx context.Context, userID int64, ip string) error {
	args := m.Called(ctx, userID, ip)
	return args.Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepo) List(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	args := m.Called(ctx, offset, limit)
	if u := args.Get(0); u != nil {
		return u.([]*models.User), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

type mockProfileRepo struct{ mock.Mock }

func (m *mockProfileRepo) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if p := args.Get(0); p != nil {
		return p.(*models.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepo) Update(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

type mockGroupRepo struct{ mock.Mock }

func (m *mockGroupRepo) Create(ctx context.Context, group *models.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *mockGroupRepo) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	args := m.Called(ctx, id)
	if g := args.Get(0); g != nil {
		return g.(*models.Group), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGroupRepo) GetByName(ctx context.Context, name string) (*models.Group, error) {
	args := m.Called(ctx, name)
	if g := args.Get(0); g != nil {
		return g.(*models.Group), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGroupRepo) List(ctx context.Context) ([]*models.Group, error) {
	args := m.Called(ctx)
	if g := args.Get(0); g != nil {
		return g.([]*models.Group), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGroupRepo) AddMember(ctx context.Context, groupID, userID int64) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *mockGroupRepo) RemoveMember(ctx context.Context, groupID, userID int64) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *mockGroupRepo) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	args := m.Called(ctx, groupID, userID)
	return args.Bool(0), args.Error(1)
}

type mockFollowRepo struct{ mock.Mock }

func (m *mockFollowRepo) Follow(ctx context.Context, followerID, followedID int64) error {
	args := m.Called(ctx, followerID, followedID)
	return args.Error(0)
}

func (m *mockFollowRepo) Unfollow(ctx context.Context, followerID, followedID int64) error {
	args := m.Called(ctx, followerID, followedID)
	return args.Error(0)
}

func (m *mockFollowRepo) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	args := m.Called(ctx, followerID, followedID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFollowRepo) Followers(ctx context.Context, userID int64, offset, limit int) ([]*models.User, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	if u := args.Get(0); u != nil {
		return u.([]*models.User), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockFollowRepo) Following(ctx context.Context, userID int64, offset, limit int) ([]*models.User, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	if u := args.Get(0); u != nil {
		return u.([]*models.User), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockFollowRepo) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockFollowRepo) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockPostRepo struct{ mock.Mock }

func (m *mockPostRepo) Create(ctx context.Context, post *models.Post, tags []models.Tag) error {
	args := m.Called(ctx, post, tags)
	return args.Error(0)
}

func (m *mockPostRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPostRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockPostRepo) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]*models.Post, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	if p := args.Get(0); p != nil {
		return p.([]*models.Post), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockPostRepo) ListLikedBy(ctx context.Context, userID int64, offset, limit int) ([]*models.Post, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	if p := args.Get(0); p != nil {
		return p.([]*models.Post), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockPostRepo) TagsByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]models.Tag, error) {
	args := m.Called(ctx, postIDs)
	return args.Get(0).(map[int64][]models.Tag), args.Error(1)
}

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*models.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) Update(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCommentRepo) ListByPost(ctx context.Context, postID int64, offset, limit int) ([]*models.Comment, int64, error) {
	args := m.Called(ctx, postID, offset, limit)
	if c := args.Get(0); c != nil {
		return c.([]*models.Comment), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentRepo) ListReplies(ctx context.Context, parentID int64, offset, limit int) ([]*models.Comment, int64, error) {
	args := m.Called(ctx, parentID, offset, limit)
	if c := args.Get(0); c != nil {
		return c.([]*models.Comment), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentRepo) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]*models.Comment, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	if c := args.Get(0); c != nil {
		return c.([]*models.Comment), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentRepo) ReplyCountsByCommentIDs(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	args := m.Called(ctx, commentIDs)
	return args.Get(0).(map[int64]int64), args.Error(1)
}

func (m *mockCommentRepo) CountByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	args := m.Called(ctx, postIDs)
	return args.Get(0).(map[int64]int64), args.Error(1)
}

type mockLikeRepo struct{ mock.Mock }

func (m *mockLikeRepo) TogglePostLike(ctx context.Context, userID, postID int64) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *mockLikeRepo) ToggleCommentLike(ctx context.Context, userID, commentID int64) (bool, error) {
	args := m.Called(ctx, userID, commentID)
	return args.Bool(0), args.Error(1)
}

func (m *mockLikeRepo) CountPostLikes(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLikeRepo) CountCommentLikes(ctx context.Context, commentID int64) (int64, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLikeRepo) PostLikeCounts(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	args := m.Called(ctx, postIDs)
	return args.Get(0).(map[int64]int64), args.Error(1)
}

func (m *mockLikeRepo) CommentLikeCounts(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	args := m.Called(ctx, commentIDs)
	return args.Get(0).(map[int64]int64), args.Error(1)
}

func (m *mockLikeRepo) PostsLikedBy(ctx context.Context, userID int64, postIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, userID, postIDs)
	return args.Get(0).(map[int64]bool), args.Error(1)
}

func (m *mockLikeRepo) CommentsLikedBy(ctx context.Context, userID int64, commentIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, userID, commentIDs)
	return args.Get(0).(map[int64]bool), args.Error(1)
}

type mockPermissionRepo struct{ mock.Mock }

func (m *mockPermissionRepo) Upsert(ctx context.Context, perm *models.Permission) error {
	args := m.Called(ctx, perm)
	return args.Error(0)
}

func (m *mockPermissionRepo) GetByIDs(ctx context.Context, ids []int64) ([]*models.Permission, error) {
	args := m.Called(ctx, ids)
	if p := args.Get(0); p != nil {
		return p.([]*models.Permission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPermissionRepo) GetByNames(ctx context.Context, names []string) ([]*models.Permission, error) {
	args := m.Called(ctx, names)
	if p := args.Get(0); p != nil {
		return p.([]*models.Permission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPermissionRepo) List(ctx context.Context) ([]*models.Permission, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]*models.Permission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPermissionRepo) DirectPermissions(ctx context.Context, userID int64) ([]*models.Permission, error) {
	args := m.Called(ctx, userID)
	if p := args.Get(0); p != nil {
		return p.([]*models.Permission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPermissionRepo) GroupPermissions(ctx context.Context, userID int64) ([]*models.Permission, error) {
	args := m.Called(ctx, userID)
	if p := args.Get(0); p != nil {
		return p.([]*models.Permission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPermissionRepo) GrantToUser(ctx context.Context, userID int64, permIDs []int64) error {
	args := m.Called(ctx, userID, permIDs)
	return args.Error(0)
}

func (m *mockPermissionRepo) RevokeFromUser(ctx context.Context, userID int64, permIDs []int64) error {
	args := m.Called(ctx, userID, permIDs)
	return args.Error(0)
}

func (m *mockPermissionRepo) GrantToGroup(ctx context.Context, groupID int64, permIDs []int64) error {
	args := m.Called(ctx, groupID, permIDs)
	return args.Error(0)
}

func (m *mockPermissionRepo) RevokeFromGroup(ctx context.Context, groupID int64, permIDs []int64) error {
	args := m.Called(ctx, groupID, permIDs)
	return args.Error(0)
}

func (m *mockPermissionRepo) UserPermissionNames(ctx context.Context, userID int64) ([]string, error) {
	args := m.Called(ctx, userID)
	if n := args.Get(0); n != nil {
		return n.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}
