package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/vitaehq/vitae/pkg/kernel"
)

// AuthContext is the identity stored in fiber locals for a request
type AuthContext struct {
	UserID   kernel.UserID
	Username string
	Email    string
	Token    string
}

const authContextKey = "auth_context"

// TokenMiddleware validates bearer tokens and rejects revoked ones.
// Every 401 in the system funnels through here, so the client's
// clear-credentials-on-401 policy has a single trigger point.
type TokenMiddleware struct {
	tokenSvc TokenService
	revoker  TokenRevoker
}

func NewTokenMiddleware(tokenSvc TokenService, revoker TokenRevoker) *TokenMiddleware {
	return &TokenMiddleware{
		tokenSvc: tokenSvc,
		revoker:  revoker,
	}
}

// Authenticate returns the fiber handler guarding protected routes
func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization format")
		}

		token := parts[1]

		claims, err := m.tokenSvc.ValidateAccessToken(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		revoked, err := m.revoker.IsRevoked(c.Context(), token)
		if err != nil {
			return err
		}
		if revoked {
			return fiber.NewError(fiber.StatusUnauthorized, "Token has been revoked")
		}

		c.Locals(authContextKey, AuthContext{
			UserID:   claims.UserID,
			Username: claims.Username,
			Email:    claims.Email,
			Token:    token,
		})

		return c.Next()
	}
}

// GetAuthContext extracts the authenticated identity from the request
func GetAuthContext(c *fiber.Ctx) (AuthContext, bool) {
	authCtx, ok := c.Locals(authContextKey).(AuthContext)
	return authCtx, ok
}
