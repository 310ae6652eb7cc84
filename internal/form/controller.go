// Package form implements the note form: the text and mode being edited,
// the submission lifecycle, and the Clear and Copy actions.
package form

import (
	"context"
	"errors"
	"strings"
	"sync"

	"smartnotes/internal/client"
	"smartnotes/internal/locale"
	"smartnotes/internal/logger"
	"smartnotes/internal/model"
)

// Summarizer sends one summarize request.
type Summarizer interface {
	Summarize(ctx context.Context, req model.SummarizeRequest) (string, error)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// State is a snapshot of the form.
type State struct {
	Text    string
	Mode    model.Mode
	Summary string
	Loading bool
	Error   string
}

// Controller owns the form state. It is safe for concurrent use.
//
// Submissions are not serialized: a second Submit while one is in flight
// sends a second request, and whichever response arrives last determines
// Summary and Error. Loading is cleared by the first submission to finish.
type Controller struct {
	api       Summarizer
	clipboard Clipboard
	messages  locale.Messages

	mu       sync.Mutex
	state    State
	onChange func(State)
}

// NewController creates a controller with mode preselected to short.
func NewController(api Summarizer, clipboard Clipboard, messages locale.Messages) *Controller {
	return &Controller{
		api:       api,
		clipboard: clipboard,
		messages:  messages,
		state:     State{Mode: model.ModeShort},
	}
}

// OnChange registers fn to receive a snapshot after every state change.
// fn runs without the controller lock held.
func (c *Controller) OnChange(fn func(State)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CanSubmit reports whether the submit action should be offered. It is
// advisory; Submit does not consult it.
func (c *Controller) CanSubmit() bool {
	s := c.State()
	return !s.Loading
}

// CanClear reports whether the clear action should be offered: everywhere
// except while loading with an empty text box.
func (c *Controller) CanClear() bool {
	s := c.State()
	return !(s.Loading && s.Text == "")
}

// SetText replaces the note text.
func (c *Controller) SetText(text string) {
	c.update(func(s *State) { s.Text = text })
}

// SetMode selects the summary mode.
func (c *Controller) SetMode(mode model.Mode) {
	c.update(func(s *State) { s.Mode = mode })
}

// Submit sends the current text and mode. Blank text only sets the error.
// It returns once the request has completed.
func (c *Controller) Submit(ctx context.Context) {
	var req model.SummarizeRequest
	blank := false
	c.update(func(s *State) {
		if strings.TrimSpace(s.Text) == "" {
			s.Error = c.messages.EmptyText
			blank = true
			return
		}
		s.Loading = true
		s.Error = ""
		s.Summary = ""
		req = model.SummarizeRequest{Text: s.Text, Mode: s.Mode}
	})
	if blank {
		return
	}

	summary, err := c.api.Summarize(ctx, req)
	c.update(func(s *State) {
		if err != nil {
			s.Error = c.errorMessage(err)
		} else {
			s.Summary = summary
		}
		s.Loading = false
	})
}

// Clear empties text, summary and error. Mode and Loading are kept and an
// in-flight request is not cancelled.
func (c *Controller) Clear() {
	c.update(func(s *State) {
		s.Text = ""
		s.Summary = ""
		s.Error = ""
	})
}

// Copy puts the summary on the clipboard. It does nothing without a
// summary, and clipboard failures are not surfaced.
func (c *Controller) Copy() {
	summary := c.State().Summary
	if summary == "" || c.clipboard == nil {
		return
	}
	if err := c.clipboard.WriteText(summary); err != nil {
		logger.Debug("clipboard write failed", "module", "form", "action", "copy", "resource", "clipboard", "result", "failed", "error", err)
	}
}

func (c *Controller) errorMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	logger.Debug("summarize request failed", "module", "form", "action", "submit", "resource", "summarize", "result", "failed", "error", err)
	return c.messages.ClientGeneric
}

func (c *Controller) update(mutate func(*State)) {
	c.mu.Lock()
	mutate(&c.state)
	snapshot := c.state
	notify := c.onChange
	c.mu.Unlock()

	if notify != nil {
		notify(snapshot)
	}
}
