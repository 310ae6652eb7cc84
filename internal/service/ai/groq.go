package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/tidwall/gjson"
)

const chatCompletionsPath = "chat/completions"

// GroqProvider implements Provider for Groq's OpenAI-compatible API.
// It issues exactly one request per call: SDK retries are disabled and no
// timeout is set beyond the caller's context and the transport defaults.
type GroqProvider struct {
	client openai.Client
	model  string
}

// NewGroqProvider creates a new Groq provider.
func NewGroqProvider(apiKey, baseURL, model string, httpClient *http.Client) *GroqProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &GroqProvider{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Name returns the provider name.
func (p *GroqProvider) Name() string {
	return ProviderGroq
}

// Complete generates a response without streaming.
//
// The raw *http.Response is captured alongside the SDK result so that error
// bodies are read here: an unparseable error body still yields an
// UpstreamError carrying the status code.
func (p *GroqProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(content),
		},
	}

	var res, raw *http.Response
	if err := p.client.Post(ctx, chatCompletionsPath, params, &res, option.WithResponseInto(&raw)); err != nil {
		if upstream := upstreamError(raw, err); upstream != nil {
			return "", upstream
		}
		return "", fmt.Errorf("call chat completions: %w", err)
	}
	if res == nil {
		res = raw
	}
	if res == nil {
		return "", fmt.Errorf("call chat completions: %w", ErrMalformedResponse)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read chat completions response: %w", err)
	}

	if !successStatus(res.StatusCode) {
		return "", &UpstreamError{StatusCode: res.StatusCode, Message: errorMessage(body)}
	}

	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("decode chat completions response: %w", ErrMalformedResponse)
	}
	return gjson.GetBytes(body, "choices.0.message.content").String(), nil
}

// upstreamError converts a failed SDK call into an UpstreamError when the
// provider answered with a non-2xx status. Transport failures return nil.
func upstreamError(raw *http.Response, err error) *UpstreamError {
	var apiErr *openai.Error
	hasAPIErr := errors.As(err, &apiErr)

	upstream := &UpstreamError{}
	switch {
	case raw != nil && !successStatus(raw.StatusCode):
		upstream.StatusCode = raw.StatusCode
		if raw.Body != nil {
			body, _ := io.ReadAll(raw.Body)
			_ = raw.Body.Close()
			upstream.Message = errorMessage(body)
		}
	case hasAPIErr:
		upstream.StatusCode = apiErr.StatusCode
	default:
		return nil
	}

	if upstream.Message == "" && hasAPIErr {
		upstream.Message = apiErr.Message
	}
	return upstream
}

// errorMessage extracts error.message from an OpenAI-style error body.
func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	return gjson.GetBytes(body, "error.message").String()
}

func successStatus(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
