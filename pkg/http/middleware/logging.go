package middleware

import (
	"time"

	applogger "github.com/DevelopLee20/Nara-Chart/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogging logs HTTP requests with method, path, status and latency.
func RequestLogging(l *applogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if l == nil {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			status := c.Response().Status
			fields := []applogger.Field{
				applogger.String("method", c.Request().Method),
				applogger.String("path", c.Path()),
				applogger.Int("status", status),
				applogger.Duration("latency_ms", latency),
			}
			if status >= 500 {
				l.Error("http request", fields...)
			} else {
				l.Debug("http request", fields...)
			}

			return err
		}
	}
}
