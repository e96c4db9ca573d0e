package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/pkg/apperrors"
	"github.com/exambank/backend/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Controllers never pick
// status codes themselves; they pass every error through here so the mapping
// stays in one place.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		respond(c, statusFor(custom.Err), custom.Message)
		return
	}

	respond(c, statusFor(err), messageFor(err))

	if statusFor(err) == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
	}
}

func respond(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.Failure(message))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrTeacherNotFound),
		errors.Is(err, apperrors.ErrAdminNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrQuestionNotFound),
		errors.Is(err, apperrors.ErrCommentNotFound),
		errors.Is(err, apperrors.ErrDepartmentNotFound),
		errors.Is(err, apperrors.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrDepartmentExists),
		errors.Is(err, apperrors.ErrCategoryExists),
		errors.Is(err, apperrors.ErrDepartmentHasRelations),
		errors.Is(err, apperrors.ErrCategoryHasRelations):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrMissingCredentials),
		errors.Is(err, apperrors.ErrUnknownRole),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return "Wrong Email or Password"
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return "student not found!"
	case errors.Is(err, apperrors.ErrTeacherNotFound):
		return "teacher not found!"
	case errors.Is(err, apperrors.ErrAdminNotFound):
		return "admin not found"
	case errors.Is(err, apperrors.ErrCourseNotFound):
		return "course not found"
	case errors.Is(err, apperrors.ErrQuestionNotFound):
		return "question not found"
	case errors.Is(err, apperrors.ErrCommentNotFound):
		return "comment not found"
	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		return "department not found"
	case errors.Is(err, apperrors.ErrCategoryNotFound):
		return "category not found"
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return "an account with this email already exists"
	case errors.Is(err, apperrors.ErrDepartmentExists):
		return "a department with this name already exists"
	case errors.Is(err, apperrors.ErrCategoryExists):
		return "a category with this name already exists"
	case errors.Is(err, apperrors.ErrDepartmentHasRelations):
		return "department is still referenced by accounts or courses"
	case errors.Is(err, apperrors.ErrCategoryHasRelations):
		return "category is still referenced by courses"
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return "insufficient permissions for this operation"
	case errors.Is(err, apperrors.ErrMissingCredentials):
		return "missing authentication headers"
	case errors.Is(err, apperrors.ErrUnknownRole):
		return "unknown role"
	case errors.Is(err, apperrors.ErrTokenExpired):
		return "token expired, please log in again"
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return "invalid token"
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		return err.Error()
	default:
		return "an unexpected error occurred"
	}
}
