package auth

import (
	"context"
	"time"
)

// PasswordService hashes and verifies user passwords
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// TokenRevoker tracks tokens invalidated before their natural expiry
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
