package user

import (
	"net/http"

	"github.com/vitaehq/vitae/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("USER")

var (
	CodeUserNotFound    = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "User not found")
	CodeUsernameTaken   = ErrRegistry.Register("USERNAME_TAKEN", errx.TypeConflict, http.StatusConflict, "Error: Username is already taken!")
	CodeEmailInUse      = ErrRegistry.Register("EMAIL_IN_USE", errx.TypeConflict, http.StatusConflict, "Error: Email is already in use!")
	CodeInvalidUserData = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid user data")
	CodeStorageFailure  = ErrRegistry.Register("STORAGE_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "User storage operation failed")
)

func ErrUserNotFound() *errx.Error {
	return ErrRegistry.New(CodeUserNotFound)
}

func ErrUsernameTaken() *errx.Error {
	return ErrRegistry.New(CodeUsernameTaken)
}

func ErrEmailInUse() *errx.Error {
	return ErrRegistry.New(CodeEmailInUse)
}

func ErrInvalidUserData() *errx.Error {
	return ErrRegistry.New(CodeInvalidUserData)
}
