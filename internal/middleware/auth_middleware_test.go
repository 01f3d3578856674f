package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chimailo/algorice/internal/app/models"
	"github.com/chimailo/algorice/internal/pkg/auth"
)

type stubUserRepo struct{ mock.Mock }

func (m *stubUserRepo) CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	return m.Called(ctx, user, profile).Error(0)
}

func (m *stubUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubUserRepo) FindByIdentity(ctx context.Context, identity string) (*models.User, error) {
	args := m.Called(ctx, identity)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *stubUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *stubUserRepo) RecordSignIn(ctx context.Context, userID int64, ip string) error {
	return m.Called(ctx, userID, ip).Error(0)
}

func (m *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *stubUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *stubUserRepo) List(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	args := m.Called(ctx, offset, limit)
	if u := args.Get(0); u != nil {
		return u.([]*models.User), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func newTestJWTService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "test",
	})
}

func performRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_ValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := newTestJWTService(time.Hour)
	m := NewAuthMiddleware(jwtService, nil, nil)

	token, _, err := jwtService.GenerateToken(5)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": GetUserID(c)})
	})

	w := performRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body["userID"])
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(newTestJWTService(time.Hour), nil, nil)

	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := performRequest(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	expired := newTestJWTService(-time.Minute)
	token, _, err := expired.GenerateToken(5)
	require.NoError(t, err)

	m := NewAuthMiddleware(newTestJWTService(time.Hour), nil, nil)
	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := performRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestJWTAuth_MalformedToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(newTestJWTService(time.Hour), nil, nil)

	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := performRequest(router, "Bearer not-a-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := newTestJWTService(time.Hour)
	userRepo := new(stubUserRepo)
	m := NewAuthMiddleware(jwtService, userRepo, nil)

	token, _, err := jwtService.GenerateToken(5)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", m.JWTAuth(), m.AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	userRepo.On("GetByID", mock.Anything, int64(5)).
		Return(&models.User{ID: 5, IsAdmin: false}, nil).Once()
	w := performRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	userRepo.On("GetByID", mock.Anything, int64(5)).
		Return(&models.User{ID: 5, IsAdmin: true}, nil).Once()
	w = performRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetUserID_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, int64(0), GetUserID(c))
}
