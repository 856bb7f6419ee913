package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader is the header the request id is read from and echoed
// back on.
const RequestIDHeader = "X-Request-ID"

// RequestID attaches a request id to every request: the inbound
// X-Request-ID header when present, a fresh UUID otherwise. The id is
// stored under the "request_id" context key and set on the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(RequestIDHeader)
			if rid == "" {
				rid = uuid.New().String()
			}
			c.Set("request_id", rid)
			c.Response().Header().Set(RequestIDHeader, rid)
			return next(c)
		}
	}
}
