package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"smartnotes/internal/locale"
	"smartnotes/internal/model"
	"smartnotes/internal/service"
)

type SummarizeHandler struct {
	service  service.SummarizeService
	messages locale.Messages
}

func NewSummarizeHandler(service service.SummarizeService, messages locale.Messages) *SummarizeHandler {
	return &SummarizeHandler{service: service, messages: messages}
}

func (h *SummarizeHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/summarize", h.Summarize)
}

// Summarize generates a summary of the submitted text.
// @Summary Summarize text
// @Description Summarize pasted text with the selected mode (short, bullets, action_items; anything else gets a generic summary).
// @Tags summarize
// @Accept json
// @Produce json
// @Param request body model.SummarizeRequest true "Summarize request"
// @Success 200 {object} summarizeResponse
// @Failure 400 {object} errorResponse "Empty text"
// @Failure 500 {object} errorResponse "Missing API key, provider failure or unexpected error"
// @Router /summarize [post]
func (h *SummarizeHandler) Summarize(c echo.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = writeUnexpected(c, h.messages, fmt.Errorf("panic: %v", r))
		}
	}()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return writeUnexpected(c, h.messages, fmt.Errorf("read request: %w", err))
	}

	// The whole body must be a single JSON value; trailing content is rejected.
	var req model.SummarizeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return writeUnexpected(c, h.messages, fmt.Errorf("decode request: %w", err))
	}

	summary, err := h.service.Summarize(c.Request().Context(), req)
	if err != nil {
		return writeServiceError(c, h.messages, err)
	}

	return c.JSON(http.StatusOK, summarizeResponse{Summary: summary})
}
