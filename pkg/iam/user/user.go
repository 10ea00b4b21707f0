package user

import (
	"strings"
	"time"

	"github.com/vitaehq/vitae/pkg/kernel"
)

// User represents a registered account
type User struct {
	ID           kernel.UserID `json:"id" db:"id"`
	Username     string        `json:"username" db:"username"`
	Email        string        `json:"email" db:"email"`
	PasswordHash string        `json:"-" db:"password_hash"`
	FirstName    string        `json:"first_name" db:"first_name"`
	LastName     string        `json:"last_name" db:"last_name"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
}

// FullName returns the display name of the user
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
