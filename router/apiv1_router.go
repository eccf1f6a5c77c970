// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"github.com/kindworks-dev/kindworks/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewAPIV1Router(e *echo.Echo) shared.Server {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/health/", func(ctx echo.Context) error {
		return ctx.String(200, "ok")
	})

	return apiV1
}
