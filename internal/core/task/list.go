package task

import "slices"

// List is an immutable, newest-first sequence of tasks. Every operation
// returns a new List and leaves the receiver untouched.
type List struct {
	tasks []Task
}

// NewList builds a List from tasks in the given order.
func NewList(tasks ...Task) List {
	return List{tasks: slices.Clone(tasks)}
}

// Len returns the number of tasks.
func (l List) Len() int { return len(l.tasks) }

// Tasks returns a copy of the tasks in display order.
func (l List) Tasks() []Task { return slices.Clone(l.tasks) }

// At returns the task at index i.
func (l List) At(i int) Task { return l.tasks[i] }

// Index returns the position of the task with the given id, or -1.
func (l List) Index(id ID) int {
	return slices.IndexFunc(l.tasks, func(t Task) bool { return t.ID == id })
}

// Get returns the task with the given id.
func (l List) Get(id ID) (Task, bool) {
	i := l.Index(id)
	if i < 0 {
		return Task{}, false
	}
	return l.tasks[i], true
}

// Prepend returns a new list with t placed first.
func (l List) Prepend(t Task) List {
	out := make([]Task, 0, len(l.tasks)+1)
	out = append(out, t)
	out = append(out, l.tasks...)
	return List{tasks: out}
}

// Replace returns a new list where the task with the same ID as t is
// swapped for t in place. The second result is false when no task matched.
func (l List) Replace(t Task) (List, bool) {
	i := l.Index(t.ID)
	if i < 0 {
		return l, false
	}
	out := slices.Clone(l.tasks)
	out[i] = t
	return List{tasks: out}, true
}

// Remove returns a new list without the task with the given id.
func (l List) Remove(id ID) (List, bool) {
	i := l.Index(id)
	if i < 0 {
		return l, false
	}
	out := make([]Task, 0, len(l.tasks)-1)
	out = append(out, l.tasks[:i]...)
	out = append(out, l.tasks[i+1:]...)
	return List{tasks: out}, true
}

// Counts returns the number of open and completed tasks.
func (l List) Counts() (open, completed int) {
	for _, t := range l.tasks {
		if t.Completed {
			completed++
		} else {
			open++
		}
	}
	return open, completed
}
