package apperr

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPError converts a domain error into an echo HTTP error. Validation
// and conflict both map to 400 per the API contract; storage errors get
// a generic body so backing-store details never reach a client (they
// are logged upstream via the error chain).
func HTTPError(err error) *echo.HTTPError {
	switch KindOf(err) {
	case KindValidation, KindConflict:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	case KindAuth:
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials").SetInternal(err)
	case KindNotFound:
		return echo.NewHTTPError(http.StatusNotFound, err.Error()).SetInternal(err)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "server error").SetInternal(err)
	}
}
