package wizard

import (
	"net/http"

	"github.com/vitaehq/vitae/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("WIZARD")

var (
	CodeSessionNotFound      = ErrRegistry.Register("SESSION_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Wizard session not found")
	CodeSessionForbidden     = ErrRegistry.Register("SESSION_FORBIDDEN", errx.TypeAuthorization, http.StatusForbidden, "Wizard session does not belong to this user")
	CodeNoNextStep           = ErrRegistry.Register("NO_NEXT_STEP", errx.TypeBusiness, http.StatusUnprocessableEntity, "Already on the last step")
	CodeNoPreviousStep       = ErrRegistry.Register("NO_PREVIOUS_STEP", errx.TypeBusiness, http.StatusUnprocessableEntity, "Already on the first step")
	CodeNotOnPreviewStep     = ErrRegistry.Register("NOT_ON_PREVIEW_STEP", errx.TypeBusiness, http.StatusUnprocessableEntity, "Save is only available on the preview step")
	CodeEntryIndexOutOfRange = ErrRegistry.Register("ENTRY_INDEX_OUT_OF_RANGE", errx.TypeValidation, http.StatusBadRequest, "Entry index out of range")
	CodeStoreFailure         = ErrRegistry.Register("STORE_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "Draft store operation failed")
)

func ErrSessionNotFound() *errx.Error {
	return ErrRegistry.New(CodeSessionNotFound)
}

func ErrSessionForbidden() *errx.Error {
	return ErrRegistry.New(CodeSessionForbidden)
}

func ErrNoNextStep() *errx.Error {
	return ErrRegistry.New(CodeNoNextStep)
}

func ErrNoPreviousStep() *errx.Error {
	return ErrRegistry.New(CodeNoPreviousStep)
}

func ErrNotOnPreviewStep() *errx.Error {
	return ErrRegistry.New(CodeNotOnPreviewStep)
}

func ErrEntryIndexOutOfRange() *errx.Error {
	return ErrRegistry.New(CodeEntryIndexOutOfRange)
}
