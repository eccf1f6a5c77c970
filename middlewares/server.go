// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package middlewares

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func registerMiddlewares(e *echo.Echo) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowHeaders:     middleware.DefaultCORSConfig.AllowHeaders,
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))

	e.Use(logger())
	e.Use(recoverMiddleware())

	// expected errors are returned as plain JSON by the controllers; anything
	// landing here is logged internally and answered with an opaque message
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)

		if ctx.Response().Committed {
			return
		}

		if he, ok := err.(*echo.HTTPError); ok {
			if jsonErr := ctx.JSON(he.Code, he.Message); jsonErr != nil {
				slog.Error("could not send error response", "error", jsonErr)
			}
			return
		}

		if jsonErr := ctx.JSON(http.StatusInternalServerError, echo.Map{"message": http.StatusText(http.StatusInternalServerError)}); jsonErr != nil {
			slog.Error("could not send error response", "error", jsonErr)
		}
	}
}

func Server() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e)
	return e
}
