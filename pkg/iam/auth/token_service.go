package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vitaehq/vitae/pkg/kernel"
)

// TokenClaims carries the identity data embedded in an access token
type TokenClaims struct {
	UserID    kernel.UserID
	Username  string
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and validates access tokens
type TokenService interface {
	GenerateAccessToken(userID kernel.UserID, username, email string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// JWTService implements TokenService with HMAC-signed JWTs
type JWTService struct {
	secret    []byte
	accessTTL time.Duration
	issuer    string
}

func NewJWTService(secret string, accessTTL time.Duration, issuer string) *JWTService {
	return &JWTService{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		issuer:    issuer,
	}
}

func (s *JWTService) GenerateAccessToken(userID kernel.UserID, username, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      userID.String(),
		"username": username,
		"email":    email,
		"iss":      s.issuer,
		"iat":      now.Unix(),
		"exp":      now.Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", ErrRegistry.NewWithCause(CodeTokenGenerationFailed, err)
	}

	return signed, nil
}

func (s *JWTService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid().WithDetail("alg", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrRegistry.NewWithCause(CodeTokenInvalid, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid()
	}

	sub, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrTokenInvalid()
	}

	return &TokenClaims{
		UserID:    kernel.NewUserID(sub),
		Username:  username,
		Email:     email,
		ExpiresAt: exp.Time,
	}, nil
}
