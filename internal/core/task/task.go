// Package task defines the in-memory task domain: the Task record, the
// immutable List value, and the Store that owns the current list.
package task

import (
	"strings"
	"time"
)

// ID identifies a task within a single process. IDs are never reused.
type ID int64

// Task is a single to-do entry.
type Task struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	CompletedAt time.Time `json:"completed_at,omitzero"` // zero when not completed
}

// HasCompletedAt reports whether the completion timestamp is set.
func (t Task) HasCompletedAt() bool {
	return !t.CompletedAt.IsZero()
}

// NormalizeTitle trims surrounding whitespace from a title.
func NormalizeTitle(title string) string {
	return strings.TrimSpace(title)
}
