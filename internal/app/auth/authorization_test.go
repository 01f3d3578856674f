package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chimailo/algorice/internal/app/models"
	"github.com/chimailo/algorice/internal/pkg/apperrors"
)

type stubPermissionRepo struct{ mock.Mock }

func (m *stubPermissionRepo) Upsert(ctx context.Context, perm *models.Permission) error {
	return m.Called(ctx, perm).Error(0)
}

func (m *stubPermissionRepo) GetByIDs(ctx context.Context, ids []int64) ([]*models.Permission, error) {
	args := m.Called(ctx, ids)
	if p := args.Get(0); p != nil {
		return p.([]*models.Permission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubPermissionRepo) GetByNames(ctx context.Context, names []string) ([]*models.Permission, error) {
	args := m.Called(ctx, names)
	if p := args.Get(0); p != nil {
		return p.([]*models.Permission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubPermissionRepo) List(ctx context.Context) ([]*models.Permission, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]*models.Permission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubPermissionRepo) DirectPermissions(ctx context.Context, userID int64) ([]*models.Permission, error) {
	args := m.Called(ctx, userID)
	if p := args.Get(0); p != nil {
		return p.([]*models.Permission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubPermissionRepo) GroupPermissions(ctx context.Context, userID int64) ([]*models.Permission, error) {
	args := m.Called(ctx, userID)
	if p := args.Get(0); p != nil {
		return p.([]*models.Permission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubPermissionRepo) GrantToUser(ctx context.Context, userID int64, permIDs []int64) error {
	return m.Called(ctx, userID, permIDs).Error(0)
}

func (m *stubPermissionRepo) RevokeFromUser(ctx context.Context, userID int64, permIDs []int64) error {
	return m.Called(ctx, userID, permIDs).Error(0)
}

func (m *stubPermissionRepo) GrantToGroup(ctx context.Context, groupID int64, permIDs []int64) error {
	return m.Called(ctx, groupID, permIDs).Error(0)
}

func (m *stubPermissionRepo) RevokeFromGroup(ctx context.Context, groupID int64, permIDs []int64) error {
	return m.Called(ctx, groupID, permIDs).Error(0)
}

func (m *stubPermissionRepo) UserPermissionNames(ctx context.Context, userID int64) ([]string, error) {
	args := m.Called(ctx, userID)
	if n := args.Get(0); n != nil {
		return n.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

type stubPostRepo struct{ mock.Mock }

func (m *stubPostRepo) Create(ctx context.Context, post *models.Post, tags []models.Tag) error {
	return m.Called(ctx, post, tags).Error(0)
}

func (m *stubPostRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubPostRepo) Update(ctx context.Context, post *models.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *stubPostRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *stubPostRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *stubPostRepo) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]*models.Post, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	if p := args.Get(0); p != nil {
		return p.([]*models.Post), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *stubPostRepo) ListLikedBy(ctx context.Context, userID int64, offset, limit int) ([]*models.Post, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	if p := args.Get(0); p != nil {
		return p.([]*models.Post), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *stubPostRepo) TagsByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]models.Tag, error) {
	args := m.Called(ctx, postIDs)
	return args.Get(0).(map[int64][]models.Tag), args.Error(1)
}

type stubCommentRepo struct{ mock.Mock }

func (m *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *stubCommentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*models.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubCommentRepo) Update(ctx context.Context, comment *models.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *stubCommentRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *stubCommentRepo) ListByPost(ctx context.Context, postID int64, offset, limit int) ([]*models.Comment, int64, error) {
	args := m.Called(ctx, postID, offset, limit)
	if c := args.Get(0); c != nil {
		return c.([]*models.Comment), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *stubCommentRepo) ListReplies(ctx context.Context, parentID int64, offset, limit int) ([]*models.Comment, int64, error) {
	args := m.Called(ctx, parentID, offset, limit)
	if c := args.Get(0); c != nil {
		return c.([]*models.Comment), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *stubCommentRepo) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]*models.Comment, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	if c := args.Get(0); c != nil {
		return c.([]*models.Comment), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *stubCommentRepo) ReplyCountsByCommentIDs(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	args := m.Called(ctx, commentIDs)
	return args.Get(0).(map[int64]int64), args.Error(1)
}

func (m *stubCommentRepo) CountByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	args := m.Called(ctx, postIDs)
	return args.Get(0).(map[int64]int64), args.Error(1)
}

func newTestAuthorization() (*AuthorizationService, *stubPermissionRepo, *stubPostRepo, *stubCommentRepo) {
	permRepo := new(stubPermissionRepo)
	postRepo := new(stubPostRepo)
	commentRepo := new(stubCommentRepo)
	return NewAuthorizationService(permRepo, postRepo, commentRepo, zerolog.Nop()), permRepo, postRepo, commentRepo
}

func TestEffectivePermissions_UnionsDirectAndGroup(t *testing.T) {
	service, permRepo, _, _ := newTestAuthorization()

	permRepo.On("DirectPermissions", mock.Anything, int64(5)).Return([]*models.Permission{
		{ID: 1, Name: "can_add_post", Model: "post"},
		{ID: 2, Name: "can_delete_post", Model: "post"},
	}, nil)
	permRepo.On("GroupPermissions", mock.Anything, int64(5)).Return([]*models.Permission{
		{ID: 2, Name: "can_delete_post", Model: "post"},
		{ID: 3, Name: "can_update_comment", Model: "comment"},
	}, nil)

	perms, err := service.EffectivePermissions(context.Background(), 5)

	require.NoError(t, err)
	assert.Len(t, perms, 3)
	assert.Contains(t, perms, "can_add_post")
	assert.Contains(t, perms, "can_delete_post")
	assert.Contains(t, perms, "can_update_comment")
}

func TestHasPermission(t *testing.T) {
	service, permRepo, _, _ := newTestAuthorization()

	permRepo.On("DirectPermissions", mock.Anything, int64(5)).Return([]*models.Permission{
		{ID: 1, Name: "can_add_post", Model: "post"},
	}, nil)
	permRepo.On("GroupPermissions", mock.Anything, int64(5)).Return([]*models.Permission{}, nil)

	assert.True(t, service.HasPermission(context.Background(), 5, "can_add_post"))
	assert.False(t, service.HasPermission(context.Background(), 5, "can_delete_user"))
}

func TestHasPermission_DeniesOnLookupError(t *testing.T) {
	service, permRepo, _, _ := newTestAuthorization()

	permRepo.On("DirectPermissions", mock.Anything, int64(5)).
		Return(nil, errors.New("connection reset"))

	assert.False(t, service.HasPermission(context.Background(), 5, "can_add_post"))
}

func TestHasAllPermissions(t *testing.T) {
	service, permRepo, _, _ := newTestAuthorization()

	permRepo.On("DirectPermissions", mock.Anything, int64(5)).Return([]*models.Permission{
		{ID: 1, Name: "can_add_post", Model: "post"},
		{ID: 2, Name: "can_update_post", Model: "post"},
	}, nil)
	permRepo.On("GroupPermissions", mock.Anything, int64(5)).Return([]*models.Permission{}, nil)

	assert.True(t, service.HasAllPermissions(context.Background(), 5, "can_add_post", "can_update_post"))
	assert.False(t, service.HasAllPermissions(context.Background(), 5, "can_add_post", "can_delete_post"))
}

func TestValidatePostOwnership(t *testing.T) {
	service, _, postRepo, _ := newTestAuthorization()

	postRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.Post{ID: 7, UserID: 5}, nil)

	assert.NoError(t, service.ValidatePostOwnership(context.Background(), 7, 5))
	assert.ErrorIs(t, service.ValidatePostOwnership(context.Background(), 7, 6), apperrors.ErrPermissionDenied)
}

func TestValidateCommentOwnership(t *testing.T) {
	service, _, _, commentRepo := newTestAuthorization()

	commentRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.Comment{ID: 42, UserID: 5}, nil)

	assert.NoError(t, service.ValidateCommentOwnership(context.Background(), 42, 5))
	assert.ErrorIs(t, service.ValidateCommentOwnership(context.Background(), 42, 6), apperrors.ErrPermissionDenied)
}

func TestValidatePostOwnership_MissingPost(t *testing.T) {
	service, _, postRepo, _ := newTestAuthorization()

	postRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrPostNotFound)

	assert.ErrorIs(t, service.ValidatePostOwnership(context.Background(), 99, 5), apperrors.ErrPostNotFound)
}
