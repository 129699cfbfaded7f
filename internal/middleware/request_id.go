package middleware

import (
	"context"

	"pricingNavigator/business/assessment"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID tags every request with a trace id so service logs can be
// correlated back to the originating call. An inbound X-Request-ID is
// kept, otherwise a fresh one is generated.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, rid)

			ctx := context.WithValue(c.Request().Context(), assessment.TraceIDKey, rid)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
