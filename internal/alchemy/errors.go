package alchemy

import (
	"errors"
	"strings"
)

var (
	// ErrNotDiscovered is returned when spawning a type that is still locked.
	ErrNotDiscovered = errors.New("element type not discovered")
	// ErrOutOfBounds is returned when a move would push a tile off the board.
	ErrOutOfBounds = errors.New("element position is out of bounds")
	// ErrNotFound is returned for ids that are not on the board.
	ErrNotFound = errors.New("element not found")
)

// ValidationError collects every problem found in a recipe list.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid recipes: unknown validation error"
	}
	if len(e.Issues) == 1 {
		return e.Issues[0]
	}
	return "recipe validation errors: " + strings.Join(e.Issues, "; ")
}

func (e *ValidationError) Add(issue string) {
	e.Issues = append(e.Issues, issue)
}

func (e *ValidationError) HasIssues() bool {
	return len(e.Issues) > 0
}
