package controllers

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/pkg/apperrors"
	"github.com/exambank/backend/internal/pkg/auth"
)

type fakeAuthService struct {
	loginResp *dto.LoginResponse
	loginErr  error
	gotRole   auth.Role
}

func (f *fakeAuthService) StudentSignUp(ctx context.Context, req *dto.StudentSignUpRequest, image *multipart.FileHeader) (*dto.AccountResponse, error) {
	return &dto.AccountResponse{ID: 1, Name: req.Name, Email: req.Email}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, role auth.Role, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	f.gotRole = role
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResp, nil
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	fake := &fakeAuthService{loginResp: &dto.LoginResponse{Token: "tok", ID: 3, Name: "Ada", Role: "teacher"}}
	ctrl := NewAuthController(fake)

	router := gin.New()
	router.POST("/teacher/login", ctrl.Login(auth.RoleTeacher))

	w := postJSON(router, "/teacher/login", `{"email":"a@example.edu","password":"secret1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if fake.gotRole != auth.RoleTeacher {
		t.Errorf("service called with role %q, want teacher", fake.gotRole)
	}

	var envelope struct {
		Status bool              `json:"status"`
		Data   dto.LoginResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if !envelope.Status || envelope.Data.Token != "tok" {
		t.Errorf("unexpected envelope: %+v", envelope)
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)

	fake := &fakeAuthService{loginErr: apperrors.ErrInvalidCredentials}
	ctrl := NewAuthController(fake)

	router := gin.New()
	router.POST("/student/login", ctrl.Login(auth.RoleStudent))

	w := postJSON(router, "/student/login", `{"email":"a@example.edu","password":"wrong1"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	var envelope dto.StatusEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if envelope.Status || envelope.Message != "Wrong Email or Password" {
		t.Errorf("unexpected envelope: %+v", envelope)
	}
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := NewAuthController(&fakeAuthService{})
	router := gin.New()
	router.POST("/admin/login", ctrl.Login(auth.RoleAdmin))

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"missing password", `{"email":"a@example.edu"}`},
		{"invalid email", `{"email":"nope","password":"secret1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/admin/login", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}
