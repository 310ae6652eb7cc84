// Package locale holds the user-facing messages returned by the API and
// shown by the form controller.
package locale

import (
	"fmt"
	"strings"
)

const (
	English    = "en"
	Indonesian = "id"
)

// Messages is one language's set of user-facing strings.
type Messages struct {
	EmptyText     string
	MissingAPIKey string
	// UpstreamStatus is a format string taking the provider's HTTP status.
	UpstreamStatus string
	NoSummary      string
	ServerError    string
	ClientGeneric  string
}

var catalog = map[string]Messages{
	English: {
		EmptyText:      "Text must not be empty.",
		MissingAPIKey:  "GROQ_API_KEY was not found in the server environment.",
		UpstreamStatus: "Failed to call Groq API (status %d).",
		NoSummary:      "No summary result.",
		ServerError:    "An error occurred on the server.",
		ClientGeneric:  "An error occurred.",
	},
	Indonesian: {
		EmptyText:      "Teks tidak boleh kosong.",
		MissingAPIKey:  "GROQ_API_KEY tidak ditemukan di environment server.",
		UpstreamStatus: "Gagal memanggil Groq API (status %d).",
		NoSummary:      "Tidak ada hasil ringkasan.",
		ServerError:    "Terjadi kesalahan di server.",
		ClientGeneric:  "Terjadi kesalahan.",
	},
}

// Get returns the messages for tag ("en", "id", "id-ID", ...).
// Unknown tags fall back to English.
func Get(tag string) Messages {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if base, _, ok := strings.Cut(tag, "-"); ok {
		tag = base
	}
	if m, ok := catalog[tag]; ok {
		return m
	}
	return catalog[English]
}

// Upstream formats the UpstreamStatus message.
func (m Messages) Upstream(status int) string {
	return fmt.Sprintf(m.UpstreamStatus, status)
}
