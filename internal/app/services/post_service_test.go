package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appAuth "github.com/chimailo/algorice/internal/app/auth"
	"github.com/chimailo/algorice/internal/app/models"
	"github.com/chimailo/algorice/internal/app/models/dto"
	"github.com/chimailo/algorice/internal/pkg/apperrors"
)

type postServiceMocks struct {
	postRepo    *mockPostRepo
	userRepo    *mockUserRepo
	commentRepo *mockCommentRepo
	likeRepo    *mockLikeRepo
}

func newTestPostService() (*PostService, postServiceMocks) {
	m := postServiceMocks{
		postRepo:    new(mockPostRepo),
		userRepo:    new(mockUserRepo),
		commentRepo: new(mockCommentRepo),
		likeRepo:    new(mockLikeRepo),
	}
	authz := appAuth.NewAuthorizationService(new(mockPermissionRepo), m.postRepo, m.commentRepo, zerolog.Nop())
	service := NewPostService(m.postRepo, m.userRepo, m.commentRepo, m.likeRepo, authz, zerolog.Nop())
	return service, m
}

func (m postServiceMocks) expectProjection(postID, viewerID int64) {
	m.postRepo.On("TagsByPostIDs", mock.Anything, []int64{postID}).
		Return(map[int64][]models.Tag{}, nil)
	m.likeRepo.On("PostLikeCounts", mock.Anything, []int64{postID}).
		Return(map[int64]int64{}, nil)
	m.commentRepo.On("CountByPostIDs", mock.Anything, []int64{postID}).
		Return(map[int64]int64{}, nil)
	if viewerID != 0 {
		m.likeRepo.On("PostsLikedBy", mock.Anything, viewerID, []int64{postID}).
			Return(map[int64]bool{}, nil)
	}
}

func TestCreatePost_DeduplicatesTags(t *testing.T) {
	service, m := newTestPostService()

	var created []models.Tag
	m.postRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Post"), mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Post).ID = 7
			created = args.Get(2).([]models.Tag)
		}).Return(nil)
	m.postRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.Post{ID: 7, Body: "hello", UserID: 5}, nil)
	m.expectProjection(7, 5)

	resp, err := service.Create(context.Background(), 5, dto.CreatePostRequest{
		Body: "hello",
		Tags: []string{"Go Lang", "go-lang", "  ", "other"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	require.Len(t, created, 2)
	assert.Equal(t, "go-lang", created[0].Slug)
	assert.Equal(t, "other", created[1].Slug)
}

func TestGetPost_NotFound(t *testing.T) {
	service, m := newTestPostService()

	m.postRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrPostNotFound)

	_, err := service.GetByID(context.Background(), 99, 5)

	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestUpdatePost_NotAuthor(t *testing.T) {
	service, m := newTestPostService()

	m.postRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.Post{ID: 7, UserID: 5}, nil)

	_, err := service.Update(context.Background(), 7, 6, dto.UpdatePostRequest{Body: "edit"})

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	m.postRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeletePost_Author(t *testing.T) {
	service, m := newTestPostService()

	m.postRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.Post{ID: 7, UserID: 5}, nil)
	m.postRepo.On("Delete", mock.Anything, int64(7)).Return(nil)

	err := service.Delete(context.Background(), 7, 5)

	require.NoError(t, err)
	m.postRepo.AssertExpectations(t)
}

func TestDeletePost_NotAuthor(t *testing.T) {
	service, m := newTestPostService()

	m.postRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.Post{ID: 7, UserID: 5}, nil)

	err := service.Delete(context.Background(), 7, 6)

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	m.postRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTogglePostLike_Unlike(t *testing.T) {
	service, m := newTestPostService()

	m.postRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.Post{ID: 7, UserID: 5}, nil)
	m.likeRepo.On("TogglePostLike", mock.Anything, int64(6), int64(7)).Return(false, nil)
	m.likeRepo.On("CountPostLikes", mock.Anything, int64(7)).Return(int64(0), nil)

	resp, err := service.ToggleLike(context.Background(), 7, 6)

	require.NoError(t, err)
	assert.False(t, resp.Liked)
	assert.Equal(t, int64(0), resp.Likes)
}

func TestPostsOf_ProjectsViewerLikes(t *testing.T) {
	service, m := newTestPostService()

	m.userRepo.On("GetByUsername", mock.Anything, "someone").
		Return(&models.User{ID: 5, Username: "someone"}, nil)
	posts := []*models.Post{{ID: 7, Body: "hello", UserID: 5}}
	m.postRepo.On("ListByUser", mock.Anything, int64(5), 0, 10).
		Return(posts, int64(1), nil)
	m.postRepo.On("TagsByPostIDs", mock.Anything, []int64{7}).
		Return(map[int64][]models.Tag{7: {{Name: "Go", Slug: "go"}}}, nil)
	m.likeRepo.On("PostLikeCounts", mock.Anything, []int64{7}).
		Return(map[int64]int64{7: 4}, nil)
	m.commentRepo.On("CountByPostIDs", mock.Anything, []int64{7}).
		Return(map[int64]int64{7: 2}, nil)
	m.likeRepo.On("PostsLikedBy", mock.Anything, int64(6), []int64{7}).
		Return(map[int64]bool{7: true}, nil)

	responses, pagination, err := service.PostsOf(context.Background(), "someone", 6, 1, 10)

	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, int64(4), responses[0].Likes)
	assert.Equal(t, int64(2), responses[0].Comments)
	assert.True(t, responses[0].LikedByMe)
	require.Len(t, responses[0].Tags, 1)
	assert.Equal(t, "go", responses[0].Tags[0].Slug)
	assert.Equal(t, int64(1), pagination.TotalItems)
}

func TestLikedPosts_MarksLikedByMe(t *testing.T) {
	service, m := newTestPostService()

	posts := []*models.Post{{ID: 7, Body: "hello", UserID: 5}}
	m.postRepo.On("ListLikedBy", mock.Anything, int64(5), 0, 10).
		Return(posts, int64(1), nil)
	m.postRepo.On("TagsByPostIDs", mock.Anything, []int64{7}).
		Return(map[int64][]models.Tag{}, nil)
	m.likeRepo.On("PostLikeCounts", mock.Anything, []int64{7}).
		Return(map[int64]int64{7: 1}, nil)
	m.commentRepo.On("CountByPostIDs", mock.Anything, []int64{7}).
		Return(map[int64]int64{}, nil)
	m.likeRepo.On("PostsLikedBy", mock.Anything, int64(5), []int64{7}).
		Return(map[int64]bool{7: true}, nil)

	responses, _, err := service.LikedPosts(context.Background(), 5, 1, 10)

	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.True(t, responses[0].LikedByMe)
}
