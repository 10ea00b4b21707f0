package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vitaehq/vitae/pkg/kernel"
)

func newTestApp(t *testing.T) (*fiber.App, TokenService, *fakeRevoker) {
	t.Helper()

	tokenSvc := NewJWTService("test-secret", time.Hour, "test")
	revoker := newFakeRevoker()
	middleware := NewTokenMiddleware(tokenSvc, revoker)

	app := fiber.New()
	app.Get("/protected", middleware.Authenticate(), func(c *fiber.Ctx) error {
		authCtx, ok := GetAuthContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusInternalServerError, "no auth context")
		}
		return c.SendString(authCtx.Username)
	})

	return app, tokenSvc, revoker
}

func TestAuthenticateRejectsMissingOrMalformedHeader(t *testing.T) {
	app, _, _ := newTestApp(t)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc123"},
		{"no token", "Bearer"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			if resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", resp.StatusCode)
			}
		})
	}
}

func TestAuthenticateAcceptsValidToken(t *testing.T) {
	app, tokenSvc, _ := newTestApp(t)

	token, err := tokenSvc.GenerateAccessToken(kernel.NewUserID("u1"), "ada", "ada@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAuthenticateRejectsRevokedToken(t *testing.T) {
	app, tokenSvc, revoker := newTestApp(t)

	token, err := tokenSvc.GenerateAccessToken(kernel.NewUserID("u1"), "ada", "ada@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	revoker.revoked[token] = true

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	expiredSvc := NewJWTService("test-secret", -time.Minute, "test")
	token, err := expiredSvc.GenerateAccessToken(kernel.NewUserID("u1"), "ada", "ada@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}
