package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"smartnotes/internal/config"
	"smartnotes/internal/logger"
)

var (
	// serverURL is the base URL of the SmartNotes server.
	serverURL string

	// proxyURL routes requests through an HTTP(S) or SOCKS5 proxy.
	proxyURL string

	// localeTag selects the language of locally generated messages.
	localeTag string

	// verbose enables debug logging on stderr.
	verbose bool
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:     "smartnotes",
	Short:   "Summarize notes with a SmartNotes server",
	Version: config.AppVersion,
	Long: `smartnotes sends a note to a running SmartNotes server and prints the
summary: a short paragraph, tidy bullet points, or only the action items.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger.InitWriter(os.Stderr, level, "text")
	},
}

// Execute runs the CLI. Errors are printed to stderr, except a failed
// summary whose message the summarize command already printed.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errSummarizeFailed) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&serverURL, "server", envOr("SMARTNOTES_SERVER", "http://localhost:8080"),
		"SmartNotes server URL (env SMARTNOTES_SERVER)",
	)
	rootCmd.PersistentFlags().StringVar(
		&proxyURL, "proxy", os.Getenv("SMARTNOTES_PROXY_URL"),
		"HTTP(S) or SOCKS5 proxy URL (env SMARTNOTES_PROXY_URL)",
	)
	rootCmd.PersistentFlags().StringVar(
		&localeTag, "locale", envOr("SMARTNOTES_LOCALE", "en"),
		"Message language: en, id",
	)
	rootCmd.PersistentFlags().BoolVar(
		&verbose, "verbose", false,
		"Log requests and clipboard failures to stderr",
	)

	rootCmd.AddCommand(summarizeCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
