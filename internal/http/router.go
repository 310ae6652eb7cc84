package http

import (
	"io/fs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "smartnotes/docs"
	"smartnotes/internal/handler"
	"smartnotes/internal/locale"
)

// NewRouter wires the API, swagger docs and the browser page. staticDir
// overrides the embedded page when it contains an index.html.
func NewRouter(
	summarizeHandler *handler.SummarizeHandler,
	healthHandler *handler.HealthHandler,
	messages locale.Messages,
	staticDir string,
	embedded fs.FS,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler(messages)
	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	summarizeHandler.RegisterRoutes(api)
	healthHandler.RegisterRoutes(api)

	registerStatic(e, staticDir, embedded)

	return e
}
