package task

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/tasklist/internal/core/logging"
)

// Store owns the authoritative task list for the process. Each operation
// replaces the whole list value; callers only ever receive copies.
//
// Store is not safe for concurrent use. It is driven from the Bubble Tea
// update loop, which serializes every call.
type Store struct {
	list List
	seq  *Sequence
	now  func() time.Time
	log  zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for CreatedAt and CompletedAt.
// A nil clock is ignored.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSequence overrides the ID sequence.
func WithSequence(seq *Sequence) Option {
	return func(s *Store) { s.seq = seq }
}

// NewStore creates an empty store.
func NewStore(log zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		seq: NewSequence(),
		now: time.Now,
		log: log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the current list value.
func (s *Store) List() List { return s.list }

// Tasks returns a copy of the current tasks, newest first.
func (s *Store) Tasks() []Task { return s.list.Tasks() }

// Len returns the number of tasks.
func (s *Store) Len() int { return s.list.Len() }

// Get returns the task with the given id.
func (s *Store) Get(id ID) (Task, bool) { return s.list.Get(id) }

// timestamp reads the clock. A zero reading falls back to the wall clock so
// a completed task always carries a completion time.
func (s *Store) timestamp() time.Time {
	if t := s.now(); !t.IsZero() {
		return t
	}
	return time.Now()
}

// Add creates a task from the trimmed title and prepends it. A blank title
// leaves the list unchanged and returns false.
func (s *Store) Add(title string) (Task, bool) {
	title = NormalizeTitle(title)
	if title == "" {
		logging.Op(s.log, "add").Str("reason", "blank title").Msg("add ignored")
		return Task{}, false
	}

	t := Task{
		ID:        s.seq.Next(),
		Title:     title,
		CreatedAt: s.timestamp(),
	}
	s.list = s.list.Prepend(t)

	logging.Op(s.log, "add").Int64("task_id", int64(t.ID)).Int("count", s.list.Len()).Msg("task added")
	return t, true
}

// Toggle flips the completion state of the task. CompletedAt is set on
// false→true and cleared on true→false. Unknown ids are a no-op.
func (s *Store) Toggle(id ID) (Task, bool) {
	t, ok := s.list.Get(id)
	if !ok {
		logging.Op(s.log, "toggle").Int64("task_id", int64(id)).Str("reason", "unknown id").Msg("toggle ignored")
		return Task{}, false
	}

	t.Completed = !t.Completed
	if t.Completed {
		t.CompletedAt = s.timestamp()
	} else {
		t.CompletedAt = time.Time{}
	}
	s.list, _ = s.list.Replace(t)

	logging.Op(s.log, "toggle").Int64("task_id", int64(id)).Bool("completed", t.Completed).Msg("task toggled")
	return t, true
}

// Delete removes the task. Unknown ids are a no-op.
func (s *Store) Delete(id ID) (Task, bool) {
	t, ok := s.list.Get(id)
	if !ok {
		logging.Op(s.log, "delete").Int64("task_id", int64(id)).Str("reason", "unknown id").Msg("delete ignored")
		return Task{}, false
	}

	s.list, _ = s.list.Remove(id)

	logging.Op(s.log, "delete").Int64("task_id", int64(id)).Int("count", s.list.Len()).Msg("task deleted")
	return t, true
}

// Rename replaces the title of the task with the trimmed newTitle. Blank
// titles, unchanged titles and unknown ids are a no-op.
func (s *Store) Rename(id ID, newTitle string) (Task, bool) {
	newTitle = NormalizeTitle(newTitle)

	t, ok := s.list.Get(id)
	switch {
	case !ok:
		logging.Op(s.log, "rename").Int64("task_id", int64(id)).Str("reason", "unknown id").Msg("rename ignored")
		return Task{}, false
	case newTitle == "":
		logging.Op(s.log, "rename").Int64("task_id", int64(id)).Str("reason", "blank title").Msg("rename ignored")
		return t, false
	case newTitle == t.Title:
		logging.Op(s.log, "rename").Int64("task_id", int64(id)).Str("reason", "unchanged title").Msg("rename ignored")
		return t, false
	}

	t.Title = newTitle
	s.list, _ = s.list.Replace(t)

	logging.Op(s.log, "rename").Int64("task_id", int64(id)).Msg("task renamed")
	return t, true
}
