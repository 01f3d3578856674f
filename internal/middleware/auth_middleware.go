package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appAuth "github.com/chimailo/algorice/internal/app/auth"
	"github.com/chimailo/algorice/internal/app/models/dto"
	"github.com/chimailo/algorice/internal/app/repositories"
	"github.com/chimailo/algorice/internal/pkg/apperrors"
	"github.com/chimailo/algorice/internal/pkg/auth"
)

// ContextUserIDKey is where JWTAuth stores the authenticated user's id.
const ContextUserIDKey = "userID"

// AuthMiddleware guards routes behind JWT authentication and the
// authorization layer.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   repositories.IUserRepository
	authz      *appAuth.AuthorizationService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo repositories.IUserRepository, authz *appAuth.AuthorizationService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		authz:      authz,
	}
}

// JWTAuth validates the bearer token and stores the caller's user id in
// the request context. Expired and malformed tokens get distinct replies.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, apperrors.ErrTokenInvalid)
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if err == auth.ErrExpiredToken {
				HandleAPIError(c, apperrors.ErrTokenExpired)
			} else {
				HandleAPIError(c, apperrors.ErrTokenInvalid)
			}
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// AdminRequired allows only accounts with the admin flag through. Must
// run after JWTAuth.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == 0 {
			HandleAPIError(c, apperrors.ErrTokenInvalid)
			return
		}

		user, err := m.userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			HandleAPIError(c, err)
			return
		}
		if !user.IsAdmin {
			HandleAPIError(c, apperrors.ErrPermissionDenied)
			return
		}

		c.Next()
	}
}

// PermissionRequired allows only callers holding the named permission
// through the resolver. Must run after JWTAuth.
func (m *AuthMiddleware) PermissionRequired(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == 0 {
			HandleAPIError(c, apperrors.ErrTokenInvalid)
			return
		}

		if !m.authz.HasPermission(c.Request.Context(), userID, permission) {
			HandleAPIError(c, apperrors.ErrPermissionDenied)
			return
		}

		c.Next()
	}
}

// GetUserID reads the authenticated user id set by JWTAuth; zero means
// unauthenticated.
func GetUserID(c *gin.Context) int64 {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0
	}
	userID, ok := value.(int64)
	if !ok {
		return 0
	}
	return userID
}

// RequireUserID is GetUserID for handlers that must have a caller; it
// writes the 401 itself and reports whether the handler may proceed.
func RequireUserID(c *gin.Context) (int64, bool) {
	userID := GetUserID(c)
	if userID == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required", nil))
		return 0, false
	}
	return userID, true
}
