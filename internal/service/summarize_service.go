package service

import (
	"context"
	"errors"
	"fmt"

	"smartnotes/internal/config"
	"smartnotes/internal/locale"
	"smartnotes/internal/logger"
	"smartnotes/internal/model"
	"smartnotes/internal/service/ai"
)

// SummarizeService turns a SummarizeRequest into a summary.
type SummarizeService interface {
	// Summarize validates the request, calls the provider once and returns
	// the summary. Errors are ErrEmptyText, ErrMissingAPIKey,
	// *ai.UpstreamError, or anything unexpected.
	Summarize(ctx context.Context, req model.SummarizeRequest) (string, error)
}

type summarizeService struct {
	keys        config.KeySource
	providerCfg ai.Config
	newProvider ai.Factory
	messages    locale.Messages
}

// NewSummarizeService creates a new summarize service. providerCfg supplies
// everything except the API key, which is read from keys on every call.
// A nil newProvider uses ai.NewProvider.
func NewSummarizeService(
	keys config.KeySource,
	providerCfg ai.Config,
	newProvider ai.Factory,
	messages locale.Messages,
) SummarizeService {
	if newProvider == nil {
		newProvider = ai.NewProvider
	}
	return &summarizeService{
		keys:        keys,
		providerCfg: providerCfg,
		newProvider: newProvider,
		messages:    messages,
	}
}

func (s *summarizeService) Summarize(ctx context.Context, req model.SummarizeRequest) (string, error) {
	if req.Blank() {
		return "", ErrEmptyText
	}

	if !req.Mode.Known() {
		logger.Debug("ai summarize mode fallback", "module", "service", "action", "fetch", "resource", "ai", "result", "ok", "mode", string(req.Mode))
	}
	prompt := ai.BuildPrompt(req.Mode, req.Text)

	cfg := s.providerCfg
	cfg.APIKey = s.keys.APIKey()
	if cfg.APIKey == "" {
		logger.Error("ai api key missing", "module", "service", "action", "fetch", "resource", "ai", "result", "failed", "env", config.APIKeyEnv)
		return "", ErrMissingAPIKey
	}

	provider, err := s.newProvider(cfg)
	if err != nil {
		logger.Warn("ai provider create failed", "module", "service", "action", "fetch", "resource", "ai", "result", "failed", "model", cfg.Model, "error", err)
		return "", fmt.Errorf("create provider: %w", err)
	}

	content, err := provider.Complete(ctx, ai.SystemPrompt, prompt)
	if err != nil {
		var upstream *ai.UpstreamError
		if errors.As(err, &upstream) {
			logger.Warn("ai summarize rejected", "module", "service", "action", "fetch", "resource", "ai", "result", "failed", "provider", provider.Name(), "model", cfg.Model, "status_code", upstream.StatusCode, "error", upstream.Message)
		}
		return "", fmt.Errorf("complete: %w", err)
	}

	if content == "" {
		logger.Info("ai summarize empty", "module", "service", "action", "fetch", "resource", "ai", "result", "ok", "provider", provider.Name(), "mode", string(req.Mode))
		return s.messages.NoSummary, nil
	}

	logger.Debug("ai summarize done", "module", "service", "action", "fetch", "resource", "ai", "result", "ok", "provider", provider.Name(), "mode", string(req.Mode), "summary_len", len(content))
	return content, nil
}
