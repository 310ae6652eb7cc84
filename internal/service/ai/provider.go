package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

//go:generate mockgen -source=provider.go -destination=mock/provider_mock.go -package=mock

// Provider defines the interface for chat-completion providers.
type Provider interface {
	// Name returns the provider name.
	Name() string
	// Complete sends one system and one user message and returns the content
	// of the first choice. An empty string means the response carried no
	// content. Non-2xx responses are reported as *UpstreamError.
	Complete(ctx context.Context, systemPrompt, content string) (string, error)
}

// Config holds the configuration for a provider.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client // optional; nil uses the SDK default
}

// Factory builds a provider for one request.
type Factory func(cfg Config) (Provider, error)

// ProviderGroq is the only supported provider.
const ProviderGroq = "groq"

var (
	ErrMissingAPIKey     = errors.New("API key is required")
	ErrMissingBaseURL    = errors.New("base URL is required")
	ErrMissingModel      = errors.New("model is required")
	ErrMalformedResponse = errors.New("malformed provider response")
)

// UpstreamError is a non-2xx answer from the provider. Message is the
// provider's error.message and may be empty.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Message)
}

// NewProvider creates the Groq provider from cfg.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}
	return NewGroqProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.HTTPClient), nil
}
