// Package notify provides the in-process notification bus feeding toasts.
package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/tasklist/internal/core/notify"
)

// Subscriber is a callback invoked when a notification is published.
type Subscriber func(notify.Notification)

// Bus is a synchronous in-process notification bus. It dispatches
// notifications to subscribers inline, assigning each one an ID and a
// timestamp. The Bus is safe for use from the Bubble Tea Update loop.
type Bus struct {
	mu          sync.Mutex
	subscribers []Subscriber
	nextID      int64
	muted       bool
	now         func() time.Time
}

// NewBus creates an empty notification bus.
func NewBus() *Bus {
	return &Bus{now: time.Now}
}

// Mute stops dispatching to subscribers. Published notifications are still
// logged at debug level.
func (b *Bus) Mute(muted bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.muted = muted
}

// Subscribe registers a callback that will be invoked on every Publish.
func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Publish dispatches a notification to all subscribers.
func (b *Bus) Publish(n notify.Notification) {
	b.mu.Lock()
	b.nextID++
	n.ID = b.nextID
	if n.CreatedAt.IsZero() {
		n.CreatedAt = b.now()
	}
	muted := b.muted
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	log.Debug().
		Int64("id", n.ID).
		Str("level", string(n.Level)).
		Str("message", n.Message).
		Bool("muted", muted).
		Msg("notification published")

	if muted {
		return
	}
	for _, fn := range subs {
		fn(n)
	}
}

// Infof publishes an info-level notification.
func (b *Bus) Infof(format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   notify.LevelInfo,
		Message: fmt.Sprintf(format, args...),
	})
}
