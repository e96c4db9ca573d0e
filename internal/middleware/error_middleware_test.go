package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/pkg/apperrors"
)

func runHandlerError(t *testing.T, err error) (int, dto.StatusEnvelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		HandleAPIError(c, err)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	var envelope dto.StatusEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	return w.Code, envelope
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"wrong credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "Wrong Email or Password"},
		{"student missing", apperrors.ErrStudentNotFound, http.StatusNotFound, "student not found!"},
		{"teacher missing", apperrors.ErrTeacherNotFound, http.StatusNotFound, "teacher not found!"},
		{"course missing", apperrors.ErrCourseNotFound, http.StatusNotFound, "course not found"},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict, "an account with this email already exists"},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, "insufficient permissions for this operation"},
		{"unknown role", apperrors.ErrUnknownRole, http.StatusBadRequest, "unknown role"},
		{"department in use", apperrors.ErrDepartmentHasRelations, http.StatusConflict, "department is still referenced by accounts or courses"},
		{"internal", errors.New("pq: connection refused"), http.StatusInternalServerError, "an unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, envelope := runHandlerError(t, tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if envelope.Status {
				t.Error("envelope status = true for an error response")
			}
			if envelope.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", envelope.Message, tt.wantMessage)
			}
		})
	}
}

func TestCustomErrorKeepsMessageAndBaseStatus(t *testing.T) {
	err := apperrors.NewBadRequestError("links must be a JSON array of {link_name, link}")

	status, envelope := runHandlerError(t, err)
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if envelope.Message != "links must be a JSON array of {link_name, link}" {
		t.Errorf("message = %q, custom message lost", envelope.Message)
	}
}

func TestWrappedSentinelStillMaps(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), apperrors.ErrCourseNotFound)

	status, _ := runHandlerError(t, wrapped)
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for wrapped sentinel", status)
	}
}
