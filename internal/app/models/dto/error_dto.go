package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorCode is a machine-readable identifier carried in error responses.
type ErrorCode string

const (
	ErrorCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrorCodeConflict         ErrorCode = "CONFLICT"
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	ErrorCodeTokenExpired     ErrorCode = "TOKEN_EXPIRED"
	ErrorCodeTokenInvalid     ErrorCode = "TOKEN_INVALID"
	ErrorCodeForbidden        ErrorCode = "FORBIDDEN"
	ErrorCodeAccountDisabled  ErrorCode = "ACCOUNT_DISABLED"
	ErrorCodeBadRequest       ErrorCode = "BAD_REQUEST"
	ErrorCodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// ErrorDetail is one field-level validation failure.
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorBody carries the error payload inside ErrorResponse.
type ErrorBody struct {
	Code    ErrorCode     `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorResponse is the envelope for every failed response.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// NewErrorResponse builds the error envelope.
func NewErrorResponse(code ErrorCode, message string, details []ErrorDetail) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// ExtractValidationDetails converts validator.ValidationErrors from gin
// binding into per-field details. A non-validator error yields a single
// generic detail so binding failures never leak internals.
func ExtractValidationDetails(err error) []ErrorDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ErrorDetail{{Field: "body", Message: "malformed request body"}}
	}

	details := make([]ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, ErrorDetail{
			Field:   strings.ToLower(fe.Field()),
			Message: validationMessage(fe),
		})
	}
	return details
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "alphanum":
		return "must contain only letters and digits"
	default:
		return fmt.Sprintf("failed validation on '%s'", fe.Tag())
	}
}
