package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func testJWTService() *JWTService {
	return NewJWTService(JWTConfig{
		Secrets: map[Role]string{
			RoleStudent: "student-secret",
			RoleTeacher: "teacher-secret",
			RoleAdmin:   "admin-secret",
		},
		TokenExp: map[Role]time.Duration{
			RoleStudent: time.Hour,
			RoleTeacher: time.Hour,
			RoleAdmin:   time.Hour,
		},
		TokenIssuer: "test",
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := testJWTService()

	for _, role := range []Role{RoleStudent, RoleTeacher, RoleAdmin} {
		t.Run(string(role), func(t *testing.T) {
			token, expiresIn, err := svc.GenerateToken(role, 42, "user@example.edu")
			if err != nil {
				t.Fatalf("GenerateToken: %v", err)
			}
			if expiresIn != 3600 {
				t.Errorf("expiresIn = %d, want 3600", expiresIn)
			}

			claims, err := svc.ValidateToken(role, token)
			if err != nil {
				t.Fatalf("ValidateToken: %v", err)
			}
			if claims.UserID != 42 || claims.Email != "user@example.edu" || claims.Role != string(role) {
				t.Errorf("unexpected claims: %+v", claims)
			}
		})
	}
}

func TestTokenRejectedForOtherRole(t *testing.T) {
	svc := testJWTService()

	token, _, err := svc.GenerateToken(RoleStudent, 1, "s@example.edu")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// A student token must not verify against the teacher or admin secret
	for _, role := range []Role{RoleTeacher, RoleAdmin} {
		if _, err := svc.ValidateToken(role, token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ValidateToken(%s, studentToken) = %v, want ErrInvalidToken", role, err)
		}
	}
}

func TestExpiredToken(t *testing.T) {
	svc := testJWTService()

	// GenerateToken never produces an expired token, so sign one by hand
	// with the same secret and a past expiry.
	issued := time.Now().Add(-2 * time.Hour)
	claims := &Claims{
		UserID: 1,
		Email:  "s@example.edu",
		Role:   string(RoleStudent),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(issued),
			NotBefore: jwt.NewNumericDate(issued),
			Issuer:    "test",
			Subject:   "1",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("student-secret"))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := svc.ValidateToken(RoleStudent, token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken on expired token = %v, want ErrExpiredToken", err)
	}
}

func TestNonPositiveExpirationFallsBackToDefault(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		Secrets:     map[Role]string{RoleStudent: "s"},
		TokenExp:    map[Role]time.Duration{RoleStudent: -time.Minute},
		TokenIssuer: "test",
	})

	token, expiresIn, err := svc.GenerateToken(RoleStudent, 1, "s@example.edu")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if want := int((720 * time.Hour).Seconds()); expiresIn != want {
		t.Errorf("expiresIn = %d, want %d", expiresIn, want)
	}
	if _, err := svc.ValidateToken(RoleStudent, token); err != nil {
		t.Errorf("ValidateToken on defaulted expiry: %v", err)
	}
}

func TestGarbageToken(t *testing.T) {
	svc := testJWTService()
	if _, err := svc.ValidateToken(RoleAdmin, "not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken(garbage) = %v, want ErrInvalidToken", err)
	}
}

func TestUnknownRoleSecret(t *testing.T) {
	svc := NewJWTService(JWTConfig{Secrets: map[Role]string{}})
	if _, _, err := svc.GenerateToken(RoleStudent, 1, "s@example.edu"); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("GenerateToken without secret = %v, want ErrUnknownRole", err)
	}
	if _, err := svc.ValidateToken(RoleStudent, "x"); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("ValidateToken without secret = %v, want ErrUnknownRole", err)
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input  string
		want   Role
		wantOK bool
	}{
		{"student", RoleStudent, true},
		{"teacher", RoleTeacher, true},
		{"admin", RoleAdmin, true},
		{"Student", "", false},
		{"root", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseRole(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTokenHeader(t *testing.T) {
	if got := RoleStudent.TokenHeader(); got != "student-token" {
		t.Errorf("TokenHeader() = %q, want student-token", got)
	}
	if got := RoleAdmin.TokenHeader(); got != "admin-token" {
		t.Errorf("TokenHeader() = %q, want admin-token", got)
	}
}
