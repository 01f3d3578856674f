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

func newTestProfileService() (*ProfileService, *mockUserRepo, *mockProfileRepo, *mockFollowRepo) {
	userRepo := new(mockUserRepo)
	profileRepo := new(mockProfileRepo)
	followRepo := new(mockFollowRepo)
	return NewProfileService(userRepo, profileRepo, followRepo, zerolog.Nop()), userRepo, profileRepo, followRepo
}

func TestGetProfile_WithViewer(t *testing.T) {
	service, _, profileRepo, followRepo := newTestProfileService()

	name := "Someone"
	user := &models.User{ID: 5, Username: "someone", Profile: &models.Profile{Name: &name}}
	profileRepo.On("GetByUsername", mock.Anything, "someone").Return(user, nil)
	followRepo.On("CountFollowers", mock.Anything, int64(5)).Return(int64(12), nil)
	followRepo.On("CountFollowing", mock.Anything, int64(5)).Return(int64(3), nil)
	followRepo.On("IsFollowing", mock.Anything, int64(6), int64(5)).Return(true, nil)

	resp, err := service.GetByUsername(context.Background(), "someone", 6)

	require.NoError(t, err)
	assert.Equal(t, "someone", resp.Username)
	require.NotNil(t, resp.Follows)
	assert.Equal(t, int64(12), resp.Follows.Followers)
	assert.Equal(t, int64(3), resp.Follows.Following)
	assert.True(t, resp.FollowedByMe)
}

func TestGetProfile_OwnerSkipsFollowCheck(t *testing.T) {
	service, _, profileRepo, followRepo := newTestProfileService()

	user := &models.User{ID: 5, Username: "someone", Profile: &models.Profile{}}
	profileRepo.On("GetByUsername", mock.Anything, "someone").Return(user, nil)
	followRepo.On("CountFollowers", mock.Anything, int64(5)).Return(int64(0), nil)
	followRepo.On("CountFollowing", mock.Anything, int64(5)).Return(int64(0), nil)

	resp, err := service.GetByUsername(context.Background(), "someone", 5)

	require.NoError(t, err)
	assert.False(t, resp.FollowedByMe)
	followRepo.AssertNotCalled(t, "IsFollowing", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetProfile_Unknown(t *testing.T) {
	service, _, profileRepo, _ := newTestProfileService()

	profileRepo.On("GetByUsername", mock.Anything, "nobody").Return(nil, apperrors.ErrUserNotFound)

	_, err := service.GetByUsername(context.Background(), "nobody", 0)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateProfile_MergesOnlySetFields(t *testing.T) {
	service, userRepo, profileRepo, _ := newTestProfileService()

	oldName := "Old Name"
	oldBio := "old bio"
	profileRepo.On("GetByUserID", mock.Anything, int64(5)).
		Return(&models.Profile{Name: &oldName, Bio: &oldBio, UserID: 5}, nil)

	var saved *models.Profile
	profileRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Profile")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.Profile)
		}).Return(nil)
	userRepo.On("GetByID", mock.Anything, int64(5)).
		Return(&models.User{ID: 5, Username: "someone"}, nil)

	newBio := "new bio"
	resp, err := service.Update(context.Background(), 5, dto.UpdateProfileRequest{Bio: &newBio})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, &oldName, saved.Name)
	assert.Equal(t, &newBio, saved.Bio)
	assert.Equal(t, &newBio, resp.Bio)
}

func TestDeleteAccount(t *testing.T) {
	service, userRepo, _, _ := newTestProfileService()

	userRepo.On("Delete", mock.Anything, int64(5)).Return(nil)

	require.NoError(t, service.DeleteAccount(context.Background(), 5))
	userRepo.AssertExpectations(t)
}
