package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	mode, copySummary, verbose, localeTag, proxyURL = "short", false, false, "en", ""

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func fakeServer(t *testing.T, status int, body string, requests *[]map[string]string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var req map[string]string
		_ = json.Unmarshal(raw, &req)
		*requests = append(*requests, req)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestSummarize_FromStdin(t *testing.T) {
	var requests []map[string]string
	url := fakeServer(t, http.StatusOK, `{"summary":"- beli susu"}`, &requests)

	stdout, stderr, err := runCLI(t, "besok beli susu", "summarize", "--server", url, "--mode", "action_items")
	require.NoError(t, err)
	require.Equal(t, "- beli susu\n", stdout)
	require.Contains(t, stderr, "Processing...")
	require.Equal(t, []map[string]string{{"text": "besok beli susu", "mode": "action_items"}}, requests)
}

func TestSummarize_FromFile(t *testing.T) {
	var requests []map[string]string
	url := fakeServer(t, http.StatusOK, `{"summary":"ok"}`, &requests)

	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("isi catatan"), 0o644))

	stdout, _, err := runCLI(t, "", "summarize", path, "--server", url)
	require.NoError(t, err)
	require.Equal(t, "ok\n", stdout)
	require.Equal(t, "isi catatan", requests[0]["text"])
	require.Equal(t, "short", requests[0]["mode"])
}

func TestSummarize_BlankInputSendsNothing(t *testing.T) {
	var requests []map[string]string
	url := fakeServer(t, http.StatusOK, `{"summary":"never"}`, &requests)

	stdout, stderr, err := runCLI(t, "  \n", "summarize", "--server", url, "--locale", "id")
	require.ErrorIs(t, err, errSummarizeFailed)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "Error: Teks tidak boleh kosong.")
	require.Empty(t, requests)
}

func TestSummarize_ServerError(t *testing.T) {
	var requests []map[string]string
	url := fakeServer(t, http.StatusInternalServerError, `{"error":"Y"}`, &requests)

	_, stderr, err := runCLI(t, "text", "summarize", "--server", url)
	require.ErrorIs(t, err, errSummarizeFailed)
	require.Contains(t, stderr, "Error: Y")
}

func TestSummarize_MissingFile(t *testing.T) {
	_, _, err := runCLI(t, "", "summarize", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "read note")
}

func TestSummarize_ThroughProxy(t *testing.T) {
	hosts := make(chan string, 1)
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case hosts <- r.Host:
		default:
		}
		if r.URL.Path != "/api/summarize" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, `{"summary":"via proxy"}`)
	}))
	t.Cleanup(proxy.Close)

	stdout, _, err := runCLI(t, "text", "summarize", "--server", "http://smartnotes.invalid", "--proxy", proxy.URL)
	require.NoError(t, err)
	require.Equal(t, "via proxy\n", stdout)
	require.Equal(t, "smartnotes.invalid", <-hosts)
}
