package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chimailo/algorice/internal/app/models"
	"github.com/chimailo/algorice/internal/app/models/dto"
	"github.com/chimailo/algorice/internal/pkg/apperrors"
)

func newTestAdminService() (*AdminService, *mockUserRepo, *mockProfileRepo, *mockPermissionRepo) {
	userRepo := new(mockUserRepo)
	profileRepo := new(mockProfileRepo)
	permRepo := new(mockPermissionRepo)
	return NewAdminService(userRepo, profileRepo, permRepo, zerolog.Nop()), userRepo, profileRepo, permRepo
}

func TestAdminCreateUser_InvalidEmail(t *testing.T) {
	service, userRepo, _, _ := newTestAdminService()

	_, err := service.CreateUser(context.Background(), dto.AdminCreateUserRequest{
		Username: "newuser",
		Email:    "not-an-email",
		Password: "password123",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)
	userRepo.AssertNotCalled(t, "CreateWithProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestGrantPermissions_UnknownID(t *testing.T) {
	service, userRepo, _, permRepo := newTestAdminService()

	userRepo.On("GetByID", mock.Anything, int64(5)).Return(&models.User{ID: 5}, nil)
	permRepo.On("GetByIDs", mock.Anything, []int64{1, 99}).Return([]*models.Permission{
		{ID: 1, Name: "can_add_post", Model: "post"},
	}, nil)

	err := service.GrantPermissions(context.Background(), 5, []int64{1, 99})

	assert.ErrorIs(t, err, apperrors.ErrPermissionNotFound)
	permRepo.AssertNotCalled(t, "GrantToUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestGrantPermissions_Success(t *testing.T) {
	service, userRepo, _, permRepo := newTestAdminService()

	userRepo.On("GetByID", mock.Anything, int64(5)).Return(&models.User{ID: 5}, nil)
	permRepo.On("GetByIDs", mock.Anything, []int64{1, 2}).Return([]*models.Permission{
		{ID: 1, Name: "can_add_post", Model: "post"},
		{ID: 2, Name: "can_delete_post", Model: "post"},
	}, nil)
	permRepo.On("GrantToUser", mock.Anything, int64(5), []int64{1, 2}).Return(nil)

	err := service.GrantPermissions(context.Background(), 5, []int64{1, 2})

	require.NoError(t, err)
	permRepo.AssertExpectations(t)
}

func TestGrantPermissions_UnknownUser(t *testing.T) {
	service, userRepo, _, permRepo := newTestAdminService()

	userRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrUserNotFound)

	err := service.GrantPermissions(context.Background(), 99, []int64{1})

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	permRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestRevokePermissions(t *testing.T) {
	service, userRepo, _, permRepo := newTestAdminService()

	userRepo.On("GetByID", mock.Anything, int64(5)).Return(&models.User{ID: 5}, nil)
	permRepo.On("RevokeFromUser", mock.Anything, int64(5), []int64{1}).Return(nil)

	require.NoError(t, service.RevokePermissions(context.Background(), 5, []int64{1}))
	permRepo.AssertExpectations(t)
}

func TestListUsers_Paginates(t *testing.T) {
	service, userRepo, _, _ := newTestAdminService()

	users := []*models.User{{ID: 1, Username: "a"}, {ID: 2, Username: "b"}}
	userRepo.On("List", mock.Anything, 0, 2).Return(users, int64(5), nil)

	responses, pagination, err := service.ListUsers(context.Background(), 1, 2)

	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, int64(5), pagination.TotalItems)
	assert.True(t, pagination.HasNext)
	assert.Equal(t, 3, pagination.TotalPages)
}
