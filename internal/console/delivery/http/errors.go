package http

import (
	"errors"
	"net/http"

	"admin-console/internal/console"
	pkgErrors "admin-console/pkg/errors"
)

var (
	errSessionRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "missing "+SessionHeader+" header")
	errSessionNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "console session not found or expired")
	errUnknownModal    = pkgErrors.NewHTTPError(http.StatusBadRequest, "modal must be one of create, update, detail")
)

// mapError translates console errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, console.ErrEntityNotFound),
		errors.Is(err, console.ErrRecordNotFound),
		errors.Is(err, console.ErrConfirmationNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, console.ErrInvalidParams),
		errors.Is(err, console.ErrInvalidRecord),
		errors.Is(err, console.ErrIDRequired),
		errors.Is(err, console.ErrIDNotAllowed),
		errors.Is(err, console.ErrNothingSelected):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, console.ErrBusy),
		errors.Is(err, console.ErrModalConflict):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, console.ErrOperationNotSupported):
		return pkgErrors.NewHTTPError(http.StatusMethodNotAllowed, err.Error())
	case errors.Is(err, console.ErrQuery):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

func badRequest(err error) error {
	return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
}
