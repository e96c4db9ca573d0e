package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWT errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrUnknownRole  = errors.New("unknown role")
)

// JWTConfig defines JWT settings. Secrets holds one signing key per role; the
// original platform kept a separate secret for each portal, so a student token
// never verifies against the teacher or admin key.
type JWTConfig struct {
	Secrets     map[Role]string
	TokenExp    map[Role]time.Duration
	TokenIssuer string
}

// JWTService signs and verifies role-scoped tokens
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{config: config}
}

// Claims defines JWT token content
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed token for the given role and account.
// expiresIn is the token lifetime in seconds.
func (s *JWTService) GenerateToken(role Role, userID int64, email string) (token string, expiresIn int, err error) {
	secret, ok := s.config.Secrets[role]
	if !ok {
		return "", 0, ErrUnknownRole
	}

	exp, ok := s.config.TokenExp[role]
	if !ok || exp <= 0 {
		exp = 720 * time.Hour
	}

	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   fmt.Sprintf("%d", userID),
			ID:        uuid.New().String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, int(exp.Seconds()), nil
}

// ValidateToken verifies a token against the secret for the given role and
// returns its claims. A token issued for another role fails verification
// because the signatures do not match.
func (s *JWTService) ValidateToken(role Role, tokenString string) (*Claims, error) {
	secret, ok := s.config.Secrets[role]
	if !ok {
		return nil, ErrUnknownRole
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID <= 0 || claims.Role != string(role) {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
