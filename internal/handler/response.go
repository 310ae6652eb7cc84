package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"smartnotes/internal/locale"
	"smartnotes/internal/logger"
	"smartnotes/internal/service"
	"smartnotes/internal/service/ai"
)

type errorResponse struct {
	Error string `json:"error"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// writeServiceError maps a summarize failure onto the {error} shape.
// Only empty text is a client error; everything else is a 500.
func writeServiceError(c echo.Context, messages locale.Messages, err error) error {
	var upstream *ai.UpstreamError
	switch {
	case errors.Is(err, service.ErrEmptyText):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: messages.EmptyText})
	case errors.Is(err, service.ErrMissingAPIKey):
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: messages.MissingAPIKey})
	case errors.As(err, &upstream):
		message := upstream.Message
		if message == "" {
			message = messages.Upstream(upstream.StatusCode)
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: message})
	default:
		return writeUnexpected(c, messages, err)
	}
}

func writeUnexpected(c echo.Context, messages locale.Messages, err error) error {
	logger.Error("summarize failed", "module", "handler", "action", "request", "resource", "summarize", "result", "failed", "path", c.Request().URL.Path, "error", err)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: messages.ServerError})
}

// Error returns a JSON error response with the given status and message
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

// HTTPErrorHandler renders errors that escape the handlers (unknown routes,
// recovered panics) in the same {error} shape as the API.
func HTTPErrorHandler(messages locale.Messages) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := messages.ServerError
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
			status = he.Code
			message = http.StatusText(he.Code)
			if m, ok := he.Message.(string); ok && m != "" {
				message = m
			}
		} else {
			logger.Error("unhandled error", "module", "http", "action", "request", "resource", "http", "result", "failed", "path", c.Request().URL.Path, "error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = Error(c, status, message)
		}
		if err != nil {
			logger.Warn("error response failed", "module", "http", "action", "request", "resource", "http", "result", "failed", "error", err)
		}
	}
}
