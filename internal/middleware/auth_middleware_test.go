package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/exambank/backend/internal/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		Secrets: map[auth.Role]string{
			auth.RoleStudent: "student-secret",
			auth.RoleTeacher: "teacher-secret",
		},
		TokenExp: map[auth.Role]time.Duration{
			auth.RoleStudent: time.Hour,
			auth.RoleTeacher: time.Hour,
		},
		TokenIssuer: "test",
	})

	router := gin.New()
	mw := NewAuthMiddleware(jwtService)
	router.GET("/student/profile", mw.Require(auth.RoleStudent), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserID(c)})
	})

	return router, jwtService
}

func doRequest(router *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/student/profile", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMissingHeadersAreBadRequest(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token, _, err := jwtService.GenerateToken(auth.RoleStudent, 5, "s@example.edu")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name    string
		headers map[string]string
		want    int
	}{
		{"no headers at all", nil, http.StatusBadRequest},
		{"token without role header", map[string]string{"student-token": token}, http.StatusBadRequest},
		{"role without token header", map[string]string{"role": "student"}, http.StatusBadRequest},
		{"unknown role", map[string]string{"role": "superuser", "superuser-token": token}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.headers)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestWrongRoleIsForbidden(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token, _, err := jwtService.GenerateToken(auth.RoleTeacher, 9, "t@example.edu")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(router, map[string]string{"role": "teacher", "teacher-token": token})
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestInvalidTokenIsUnauthorized(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, map[string]string{"role": "student", "student-token": "garbage"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestCrossRoleTokenIsUnauthorized(t *testing.T) {
	router, jwtService := newTestRouter(t)

	// Teacher token presented on the student route under the student role
	token, _, err := jwtService.GenerateToken(auth.RoleTeacher, 9, "t@example.edu")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(router, map[string]string{"role": "student", "student-token": token})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestValidTokenPassesAndSetsIdentity(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token, _, err := jwtService.GenerateToken(auth.RoleStudent, 77, "s@example.edu")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(router, map[string]string{"role": "student", "student-token": token})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var body struct {
		UserID int64 `json:"userId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.UserID != 77 {
		t.Errorf("userId = %d, want 77", body.UserID)
	}
}

func TestExpiredTokenIsUnauthorized(t *testing.T) {
	router, _ := newTestRouter(t)

	// Sign a token with the router's student secret and a past expiry
	issued := time.Now().Add(-2 * time.Hour)
	claims := &auth.Claims{
		UserID: 1,
		Email:  "s@example.edu",
		Role:   string(auth.RoleStudent),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(issued),
			Issuer:    "test",
			Subject:   "1",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("student-secret"))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	w := doRequest(router, map[string]string{"role": "student", "student-token": token})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
