package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"smartnotes/internal/client"
	"smartnotes/internal/model"
)

func serve(t *testing.T, status int, body string, got *map[string]any) *client.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/summarize" {
			http.NotFound(w, r)
			return
		}
		if got != nil {
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, got)
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return client.New(srv.URL+"/", srv.Client())
}

func TestClient_Summarize(t *testing.T) {
	var got map[string]any
	c := serve(t, http.StatusOK, `{"summary":"X"}`, &got)

	summary, err := c.Summarize(context.Background(), model.SummarizeRequest{Text: "teks", Mode: model.ModeBullets})
	require.NoError(t, err)
	require.Equal(t, "X", summary)
	require.Equal(t, map[string]any{"text": "teks", "mode": "bullets"}, got)
}

func TestClient_ServerError(t *testing.T) {
	c := serve(t, http.StatusBadRequest, `{"error":"Teks tidak boleh kosong."}`, nil)

	_, err := c.Summarize(context.Background(), model.SummarizeRequest{Text: " "})
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "Teks tidak boleh kosong.", apiErr.Message)
	require.Equal(t, "Teks tidak boleh kosong.", apiErr.Error())
}

func TestClient_ServerErrorWithoutBody(t *testing.T) {
	c := serve(t, http.StatusBadGateway, `<html>gateway</html>`, nil)

	_, err := c.Summarize(context.Background(), model.SummarizeRequest{Text: "a"})
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Empty(t, apiErr.Message)
	require.Equal(t, "server returned status 502", apiErr.Error())
}

func TestClient_MalformedSuccessBody(t *testing.T) {
	c := serve(t, http.StatusOK, `{"summary":`, nil)

	_, err := c.Summarize(context.Background(), model.SummarizeRequest{Text: "a"})
	require.Error(t, err)
	var apiErr *client.APIError
	require.False(t, errors.As(err, &apiErr))
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := client.New(url, nil).Summarize(context.Background(), model.SummarizeRequest{Text: "a"})
	require.Error(t, err)
}
