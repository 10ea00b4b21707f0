package auth

import "github.com/vitaehq/vitae/pkg/kernel"

type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignUpRequest struct {
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
}

// JWTResponse is the signin payload: the bearer token plus the minimal
// user record the client persists alongside it
type JWTResponse struct {
	Token    string        `json:"token"`
	Type     string        `json:"type"`
	ID       kernel.UserID `json:"id"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type MeResponse struct {
	ID        kernel.UserID `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
}
