package middleware

import (
	"errors"
	"net/http"

	"pricingNavigator/pkg/logger"

	jsonres "pricingNavigator/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo-level fallback for errors no handler turned
// into a response itself.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	var body jsonres.Body
	switch code {
	case http.StatusNotFound:
		body = jsonres.Error("NOT_FOUND", message, nil)
	case http.StatusMethodNotAllowed:
		body = jsonres.Error("METHOD_NOT_ALLOWED", message, nil)
	case http.StatusBadRequest:
		body = jsonres.Error("BAD_REQUEST", message, nil)
	default:
		body = jsonres.Error("INTERNAL_ERROR", message, nil)
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err)
	}

	if err := c.JSON(code, body); err != nil {
		logger.Error("Failed to write error response", err)
	}
}
