// Package testutil provides shared test utilities for ticklist.
package testutil

import "github.com/ticklist/ticklist/internal/domain"

// NewTodo returns a todo with the given id and text, not completed.
func NewTodo(id int64, text string) domain.Todo {
	return domain.Todo{
		ID:        id,
		Text:      text,
		Completed: false,
	}
}

// TextPtr returns a pointer to the given string for update payloads.
func TextPtr(s string) *string {
	return &s
}

// BoolPtr returns a pointer to the given bool for update payloads.
func BoolPtr(b bool) *bool {
	return &b
}
