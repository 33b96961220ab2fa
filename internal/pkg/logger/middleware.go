package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware logs every request with latency, status and caller info
func EchoMiddleware(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := []Field{
				String("method", req.Method),
				String("path", req.URL.Path),
				Int("status", res.Status),
				Duration("latency", time.Since(start)),
				String("remote_ip", c.RealIP()),
			}
			if err != nil {
				fields = append(fields, Err(err))
				zl.Error("request failed", fields...)
				return err
			}

			zl.Info("request completed", fields...)
			return nil
		}
	}
}
