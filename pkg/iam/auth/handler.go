package auth

import (
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	service *AuthService
}

func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// SignIn authenticates a user
// POST /api/auth/signin
func (h *Handlers) SignIn(c *fiber.Ctx) error {
	var req SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
	}

	response, err := h.service.SignIn(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// SignUp registers a new user
// POST /api/auth/signup
func (h *Handlers) SignUp(c *fiber.Ctx) error {
	var req SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
	}

	response, err := h.service.SignUp(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// Logout revokes the current token
// POST /api/auth/logout
func (h *Handlers) Logout(c *fiber.Ctx) error {
	authCtx, ok := GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid session")
	}

	if err := h.service.Logout(c.Context(), authCtx.Token); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// Me returns the authenticated user's profile
// GET /api/auth/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	authCtx, ok := GetAuthContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid session")
	}

	response, err := h.service.Me(c.Context(), authCtx.UserID)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// RegisterRoutes registers auth routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, middleware *TokenMiddleware) {
	api := app.Group("/api/auth")

	// Public routes
	api.Post("/signin", handlers.SignIn)
	api.Post("/signup", handlers.SignUp)

	// Protected routes
	api.Post("/logout", middleware.Authenticate(), handlers.Logout)
	api.Get("/me", middleware.Authenticate(), handlers.Me)
}
