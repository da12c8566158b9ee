// Package notify defines the notification records surfaced as toasts.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

// LevelInfo is the level of task change announcements.
const LevelInfo Level = "info"

// Notification represents a single notification event.
type Notification struct {
	ID        int64
	Level     Level
	Message   string
	CreatedAt time.Time
}
