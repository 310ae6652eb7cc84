package http

import (
	"io/fs"
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"smartnotes/internal/logger"
)

const indexFile = "index.html"

func registerStatic(e *echo.Echo, dir string, embedded fs.FS) {
	assets, source := embedded, "embedded"
	if dir != "" {
		indexPath := filepath.Join(dir, indexFile)
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			assets, source = os.DirFS(dir), dir
		} else {
			logger.Warn("static index missing", "module", "http", "action", "request", "resource", "http", "result", "failed", "path", indexPath)
		}
	}
	if assets == nil {
		return
	}
	if _, err := fs.Stat(assets, indexFile); err != nil {
		logger.Warn("static index missing", "module", "http", "action", "request", "resource", "http", "result", "failed", "source", source)
		return
	}

	logger.Info("static assets enabled", "module", "http", "action", "request", "resource", "http", "result", "ok", "source", source)

	fileServer := nethttp.FileServer(nethttp.FS(assets))

	e.GET("/*", func(c echo.Context) error {
		requestPath := c.Request().URL.Path
		if requestPath == "/api" || strings.HasPrefix(requestPath, "/api/") {
			return echo.ErrNotFound
		}

		cleanPath := strings.TrimPrefix(path.Clean(requestPath), "/")
		if cleanPath == "" || cleanPath == "." || cleanPath == indexFile {
			logger.Debug("static index served", "module", "http", "action", "fetch", "resource", "http", "result", "ok", "path", requestPath)
			return echo.StaticFileHandler(indexFile, assets)(c)
		}

		if info, err := fs.Stat(assets, cleanPath); err == nil && !info.IsDir() {
			logger.Debug("static file served", "module", "http", "action", "fetch", "resource", "http", "result", "ok", "path", requestPath)
			fileServer.ServeHTTP(c.Response(), c.Request())
			return nil
		}

		logger.Debug("static fallback", "module", "http", "action", "fetch", "resource", "http", "result", "ok", "path", requestPath)
		return echo.StaticFileHandler(indexFile, assets)(c)
	})
}
