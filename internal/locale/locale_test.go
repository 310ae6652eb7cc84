package locale_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"smartnotes/internal/locale"
)

func TestGet_English(t *testing.T) {
	m := locale.Get("en")
	require.Equal(t, "Text must not be empty.", m.EmptyText)
	require.Equal(t, "No summary result.", m.NoSummary)
	require.Equal(t, "An error occurred on the server.", m.ServerError)
	require.Contains(t, m.MissingAPIKey, "GROQ_API_KEY")
}

func TestGet_Indonesian(t *testing.T) {
	m := locale.Get("id")
	require.Equal(t, "Teks tidak boleh kosong.", m.EmptyText)
	require.Equal(t, "Tidak ada hasil ringkasan.", m.NoSummary)
	require.Equal(t, "Terjadi kesalahan di server.", m.ServerError)
	require.Equal(t, "Terjadi kesalahan.", m.ClientGeneric)
}

func TestGet_RegionAndCase(t *testing.T) {
	require.Equal(t, locale.Get("id"), locale.Get("ID-id"))
	require.Equal(t, locale.Get("en"), locale.Get(" en-US "))
}

func TestGet_UnknownFallsBackToEnglish(t *testing.T) {
	require.Equal(t, locale.Get("en"), locale.Get("fr"))
	require.Equal(t, locale.Get("en"), locale.Get(""))
}

func TestMessages_Upstream(t *testing.T) {
	require.Equal(t, "Failed to call Groq API (status 429).", locale.Get("en").Upstream(429))
	require.Equal(t, "Gagal memanggil Groq API (status 503).", locale.Get("id").Upstream(503))
}
