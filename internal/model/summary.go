package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrTextNotString is returned when text holds a non-empty value that is not
// a JSON string.
var ErrTextNotString = errors.New("text must be a string")

// Mode selects the kind of summary to generate. Values outside the known
// set are valid and resolve to the generic instruction.
type Mode string

const (
	ModeShort       Mode = "short"
	ModeBullets     Mode = "bullets"
	ModeActionItems Mode = "action_items"
)

// Known reports whether m is one of the named modes.
func (m Mode) Known() bool {
	switch m {
	case ModeShort, ModeBullets, ModeActionItems:
		return true
	default:
		return false
	}
}

// UnmarshalJSON keeps any JSON string verbatim and maps every other value
// (null, numbers, objects) to the empty mode.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*m = ""
		return nil
	}
	*m = Mode(s)
	return nil
}

// SummarizeRequest is the body of POST /api/summarize.
type SummarizeRequest struct {
	Text string `json:"text"`
	Mode Mode   `json:"mode"`
}

// UnmarshalJSON decodes the request. An absent text, null, false or 0 all
// decode to an empty text; any other non-string text is an error.
func (r *SummarizeRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Text json.RawMessage `json:"text"`
		Mode Mode            `json:"mode"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	text, err := decodeText(raw.Text)
	if err != nil {
		return err
	}
	r.Text = text
	r.Mode = raw.Mode
	return nil
}

func decodeText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	value := gjson.ParseBytes(raw)
	switch value.Type {
	case gjson.Null, gjson.False:
		return "", nil
	case gjson.Number:
		if value.Num == 0 {
			return "", nil
		}
	case gjson.String:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return "", fmt.Errorf("%w: got %s", ErrTextNotString, value.Type)
}

// Blank reports whether the text is empty after trimming whitespace.
func (r SummarizeRequest) Blank() bool {
	return strings.TrimSpace(r.Text) == ""
}

// SummarizeResponse carries exactly one of Summary or Error.
type SummarizeResponse struct {
	Summary string `json:"summary,omitempty"`
	Error   string `json:"error,omitempty"`
}
