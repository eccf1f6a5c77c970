package middlewares

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

func recoverMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("recovered from panic in handler", "panic", r, "stack", string(debug.Stack()))
					err = echo.NewHTTPError(500, "internal server error").WithInternal(fmt.Errorf("panic: %v", r))
				}
			}()
			return next(ctx)
		}
	}
}
