package service

import (
	"errors"

	"smartnotes/internal/service/ai"
)

var (
	// ErrEmptyText is returned when the submitted text is blank.
	ErrEmptyText = errors.New("text is empty")
	// ErrMissingAPIKey is returned when no provider credential is configured.
	ErrMissingAPIKey = ai.ErrMissingAPIKey
)
