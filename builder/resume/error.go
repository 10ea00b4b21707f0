package resume

import (
	"net/http"

	"github.com/vitaehq/vitae/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("RESUME")

var (
	CodeResumeNotFound    = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Resume not found")
	CodeResumeExists      = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Resume already exists")
	CodeInvalidResumeData = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid resume data")
	CodeUnknownSection    = ErrRegistry.Register("UNKNOWN_SECTION", errx.TypeValidation, http.StatusBadRequest, "Unknown resume section")
	CodeOwnerMismatch     = ErrRegistry.Register("OWNER_MISMATCH", errx.TypeAuthorization, http.StatusForbidden, "Resume does not belong to this user")
	CodeStorageFailure    = ErrRegistry.Register("STORAGE_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "Resume storage operation failed")
)

func ErrResumeNotFound() *errx.Error {
	return ErrRegistry.New(CodeResumeNotFound)
}

func ErrResumeExists() *errx.Error {
	return ErrRegistry.New(CodeResumeExists)
}

func ErrInvalidResumeData() *errx.Error {
	return ErrRegistry.New(CodeInvalidResumeData)
}

func ErrUnknownSection() *errx.Error {
	return ErrRegistry.New(CodeUnknownSection)
}

func ErrOwnerMismatch() *errx.Error {
	return ErrRegistry.New(CodeOwnerMismatch)
}
