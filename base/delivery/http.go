package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/opepen-graveyard/goapi/domain"
	"github.com/opepen-graveyard/goapi/domain/opepen"
)

// StatusFromError maps the error taxonomy onto http status codes
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// MakeJsonResp writes data as is on success. An error value is turned into the error envelope,
// an *opepen.APIError keeps its own status and body.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if apiErr, ok := data.(*opepen.APIError); ok {
		return c.JSON(apiErr.StatusCode, apiErr.Body)
	}
	if err, ok := data.(error); ok {
		return MakeErrorResp(c, StatusFromError(err), err.Error(), "")
	}
	return c.JSON(status, data)
}

// MakeErrorResp writes {error, details?}
func MakeErrorResp(c echo.Context, status int, msg string, details string) error {
	return c.JSON(status, opepen.ErrorBody{
		Error:   msg,
		Details: details,
	})
}
