package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vogiaan1904/smartq-queue/internal/service"
	"github.com/vogiaan1904/smartq-queue/pkg/logger"
)

// RequestLogger logs every request with method, path, status and latency.
func RequestLogger(l logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			l.Info("HTTP request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", c.RealIP(),
				"user_agent", req.UserAgent(),
			)

			return err
		}
	}
}

// BookingAuth guards mutating booking endpoints with the token issued at join.
func BookingAuth(bkSvc service.BookingService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))

			if _, err := bkSvc.ValidateBookingToken(token); err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}

			return next(c)
		}
	}
}
