package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/chimailo/algorice/internal/app/models/dto"
	"github.com/chimailo/algorice/internal/pkg/apperrors"
)

// HandleAPIError is the single place where service errors become HTTP
// responses. Anything unrecognized is logged and hidden behind a 500.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError
	var details []dto.ErrorDetail
	message := ""
	if errors.As(err, &customErr) {
		message = customErr.Message
		for field, msg := range customErr.Details {
			details = append(details, dto.ErrorDetail{Field: field, Message: fmt.Sprint(msg)})
		}
	}

	respond := func(status int, code dto.ErrorCode, fallback string) {
		if message == "" {
			message = fallback
		}
		c.AbortWithStatusJSON(status, dto.NewErrorResponse(code, message, details))
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(http.StatusUnprocessableEntity, dto.ErrorCodeValidation, "Validation failed")
	case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		respond(http.StatusBadRequest, dto.ErrorCodeConflict, "Username is already taken")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(http.StatusBadRequest, dto.ErrorCodeConflict, "Email is already registered")
	case errors.Is(err, apperrors.ErrGroupAlreadyExists):
		respond(http.StatusBadRequest, dto.ErrorCodeConflict, "Group already exists")
	case errors.Is(err, apperrors.ErrConflict):
		respond(http.StatusBadRequest, dto.ErrorCodeConflict, "Resource already exists")
	case errors.Is(err, apperrors.ErrSelfFollow):
		respond(http.StatusBadRequest, dto.ErrorCodeBadRequest, "You cannot follow yourself")
	case errors.Is(err, apperrors.ErrCommentMismatch):
		respond(http.StatusBadRequest, dto.ErrorCodeBadRequest, "Comment does not belong to this post")
	case errors.Is(err, apperrors.ErrBadRequest):
		respond(http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request")
	case errors.Is(err, apperrors.ErrInvalidEmail):
		respond(http.StatusUnprocessableEntity, dto.ErrorCodeValidation, "Invalid email format")
	case errors.Is(err, apperrors.ErrInvalidPassword):
		respond(http.StatusUnprocessableEntity, dto.ErrorCodeValidation, "Password does not meet requirements")
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrPostNotFound),
		errors.Is(err, apperrors.ErrCommentNotFound),
		errors.Is(err, apperrors.ErrGroupNotFound),
		errors.Is(err, apperrors.ErrPermissionNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, dto.ErrorCodeTokenExpired, "Signature expired. Please log in again.")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(http.StatusUnauthorized, dto.ErrorCodeTokenInvalid, "Invalid token. Please log in again.")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Invalid credentials")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respond(http.StatusUnauthorized, dto.ErrorCodeAccountDisabled, "Account is disabled")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		message = ""
		details = nil
		respond(http.StatusInternalServerError, dto.ErrorCodeInternalError, "Internal server error")
	}
}

// HandleValidationError turns a gin binding failure into the structured
// 422 payload with per-field details.
func HandleValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity,
		dto.NewErrorResponse(dto.ErrorCodeValidation, "Validation failed",
			dto.ExtractValidationDetails(err)))
}
