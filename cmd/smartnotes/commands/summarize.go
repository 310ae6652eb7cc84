package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"smartnotes/internal/client"
	"smartnotes/internal/clipboard"
	"smartnotes/internal/form"
	"smartnotes/internal/locale"
	"smartnotes/internal/logger"
	"smartnotes/internal/model"
	"smartnotes/internal/network"
)

var (
	// mode is the summary mode sent with the note.
	mode string

	// copySummary copies the summary to the clipboard on success.
	copySummary bool
)

// errSummarizeFailed signals that the error was already printed.
var errSummarizeFailed = errors.New("summarize failed")

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file]",
	Short: "Summarize a note read from a file or stdin",
	Long: `Summarize reads the note from the given file, or from stdin when no file
(or "-") is given, and prints the summary.

Modes:
  short         3-5 clear, concise sentences
  bullets       tidy bullet points
  action_items  only the things that need doing, as bullets
Any other value gets a short generic summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVarP(
		&mode, "mode", "m", string(model.ModeShort),
		"Summary mode: short, bullets, action_items",
	)
	summarizeCmd.Flags().BoolVarP(
		&copySummary, "copy", "c", false,
		"Copy the summary to the clipboard",
	)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	text, err := readNote(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	httpClient := network.NewClientFactory(proxyURL).NewHTTPClient(0)
	board := clipboard.System{}
	controller := form.NewController(
		client.New(serverURL, httpClient),
		board,
		locale.Get(localeTag),
	)
	stderr := cmd.ErrOrStderr()
	controller.OnChange(func(s form.State) {
		if s.Loading {
			fmt.Fprintln(stderr, "Processing...")
		}
	})

	controller.SetText(text)
	controller.SetMode(model.Mode(mode))
	controller.Submit(context.Background())

	state := controller.State()
	if state.Error != "" {
		fmt.Fprintf(stderr, "Error: %s\n", state.Error)
		return errSummarizeFailed
	}

	fmt.Fprintln(cmd.OutOrStdout(), state.Summary)
	if copySummary {
		if !board.Available() {
			logger.Warn("clipboard unavailable", "module", "cli", "action", "copy", "resource", "clipboard", "result", "failed")
		}
		controller.Copy()
	}
	return nil
}

func readNote(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read note: %w", err)
	}
	return string(data), nil
}
