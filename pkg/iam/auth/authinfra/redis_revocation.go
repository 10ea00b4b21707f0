package authinfra

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/vitaehq/vitae/pkg/errx"
)

const revokedKeyPrefix = "auth:revoked:"

// RedisTokenRevoker stores revoked tokens until their natural expiry
type RedisTokenRevoker struct {
	client *redis.Client
}

func NewRedisTokenRevoker(client *redis.Client) *RedisTokenRevoker {
	return &RedisTokenRevoker{client: client}
}

// Revoke marks a token revoked for ttl. Tokens are keyed by digest so
// raw JWTs never land in redis.
func (r *RedisTokenRevoker) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if err := r.client.Set(ctx, revokedKey(token), "1", ttl).Err(); err != nil {
		return errx.Wrap(err, "failed to revoke token", errx.TypeInternal)
	}
	return nil
}

// IsRevoked reports whether the token was revoked
func (r *RedisTokenRevoker) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, err := r.client.Get(ctx, revokedKey(token)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errx.Wrap(err, "failed to check token revocation", errx.TypeInternal)
	}
	return true, nil
}

func revokedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return revokedKeyPrefix + hex.EncodeToString(sum[:])
}
