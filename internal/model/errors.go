package model

import "strings"

// ValidationError aggregates every violated business rule from a single
// validation pass so callers can surface all of them at once.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Add(msg string) {
	e.Messages = append(e.Messages, msg)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Messages) > 0
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
