package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tasklist/internal/core/config"
	"github.com/colonyops/tasklist/internal/core/task"
	"github.com/colonyops/tasklist/pkg/tuitest"
)

const rowWidth = 40

func sampleTask() task.Task {
	return task.Task{
		ID:        7,
		Title:     "Buy milk",
		CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestToggleLabel(t *testing.T) {
	tk := sampleTask()
	assert.Equal(t, "Mark as complete", ToggleLabel(tk))

	tk.Completed = true
	assert.Equal(t, "Mark as incomplete", ToggleLabel(tk))
}

func TestTaskItem_RecordsActionsOnce(t *testing.T) {
	tests := []struct {
		name string
		act  func(r *TaskItem)
		want RowAction
	}{
		{"toggle", func(r *TaskItem) { r.Toggle() }, RowToggle},
		{"delete", func(r *TaskItem) { r.Delete() }, RowDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewTaskItem(7, 200)
			tt.act(r)

			action, title := r.TakeAction()
			assert.Equal(t, tt.want, action)
			assert.Empty(t, title)

			action, _ = r.TakeAction()
			assert.Equal(t, RowNone, action)
		})
	}
}

func TestTaskItem_EditSeedsDraft(t *testing.T) {
	tk := sampleTask()
	r := NewTaskItem(tk.ID, 200)
	r.SetHovered(true)
	require.True(t, r.ShowControls())

	r.StartEdit(tk)

	assert.True(t, r.Editing())
	assert.Equal(t, "Buy milk", r.Draft())
	assert.False(t, r.ShowControls(), "controls hide while editing")
}

func TestTaskItem_SaveEdit(t *testing.T) {
	tests := []struct {
		name       string
		typed      string
		wantAction RowAction
		wantTitle  string
	}{
		{"new title is trimmed", "  and bread ", RowRename, "Buy milk  and bread"},
		{"unchanged title records nothing", "", RowNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := sampleTask()
			r := NewTaskItem(tk.ID, 200)
			r.StartEdit(tk)
			for _, msg := range tuitest.Type(tt.typed) {
				r.Update(msg, tk)
			}

			r.Update(tuitest.KeyEnter(), tk)

			assert.False(t, r.Editing())
			action, title := r.TakeAction()
			assert.Equal(t, tt.wantAction, action)
			assert.Equal(t, tt.wantTitle, title)
		})
	}
}

func TestTaskItem_SaveBlankDraftKeepsTitle(t *testing.T) {
	tk := sampleTask()
	r := NewTaskItem(tk.ID, 200)
	r.StartEdit(tk)
	r.draft.SetValue("   ")

	r.SaveEdit(tk)

	assert.False(t, r.Editing())
	action, _ := r.TakeAction()
	assert.Equal(t, RowNone, action)
}

func TestTaskItem_EscCancelsEdit(t *testing.T) {
	tk := sampleTask()
	r := NewTaskItem(tk.ID, 200)
	r.StartEdit(tk)
	for _, msg := range tuitest.Type(" changed") {
		r.Update(msg, tk)
	}
	require.Equal(t, "Buy milk changed", r.Draft())

	r.Update(tuitest.KeyEsc(), tk)

	assert.False(t, r.Editing())
	assert.Equal(t, "Buy milk", r.Draft(), "draft restored")
	action, _ := r.TakeAction()
	assert.Equal(t, RowNone, action)
}

func TestTaskItem_UpdateIgnoredOutsideEdit(t *testing.T) {
	tk := sampleTask()
	r := NewTaskItem(tk.ID, 200)

	r.Update(tuitest.KeyEnter(), tk)

	action, _ := r.TakeAction()
	assert.Equal(t, RowNone, action)
	assert.False(t, r.Editing())
}

func TestTaskItem_View(t *testing.T) {
	tk := sampleTask()
	r := NewTaskItem(tk.ID, 200)

	view := r.View(tk, rowWidth, config.Layout24h, 0, 1)
	assert.Equal(t, rowWidth, ansi.StringWidth(view))

	plain := ansi.Strip(view)
	assert.Contains(t, plain, "○ Buy milk")
	assert.NotContains(t, plain, "›")
	assert.NotContains(t, plain, "✎")

	r.SetHovered(true)
	plain = ansi.Strip(r.View(tk, rowWidth, config.Layout24h, 0, 1))
	assert.Contains(t, plain, "›")
	assert.Contains(t, plain, "✎")
	assert.Contains(t, plain, "✕")
}

func TestTaskItem_ViewCompleted(t *testing.T) {
	tk := sampleTask()
	tk.Completed = true
	tk.CompletedAt = time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)
	r := NewTaskItem(tk.ID, 200)

	plain := ansi.Strip(r.View(tk, rowWidth, config.Layout24h, 0, 1))
	assert.Contains(t, plain, "● Buy milk 14:30")

	plain = ansi.Strip(r.View(tk, rowWidth, config.Layout12h, 0, 1))
	assert.Contains(t, plain, "2:30 PM")
}

func TestTaskItem_ViewEditing(t *testing.T) {
	tk := sampleTask()
	r := NewTaskItem(tk.ID, 200)
	r.SetHovered(true)
	r.StartEdit(tk)

	view := r.View(tk, rowWidth, config.Layout24h, 0, 1)
	assert.Equal(t, rowWidth, ansi.StringWidth(view))

	plain := ansi.Strip(view)
	assert.Contains(t, plain, "Save")
	assert.Contains(t, plain, "Cancel")
	assert.NotContains(t, plain, "✎")
}

func TestTaskItem_ViewLeavesEditWidthAlone(t *testing.T) {
	tk := sampleTask()
	r := NewTaskItem(tk.ID, 200)
	r.SetWidth(rowWidth)
	r.StartEdit(tk)

	before := ansi.StringWidth(r.draft.View())
	r.View(tk, rowWidth*2, config.Layout24h, 0, 1)
	assert.Equal(t, before, ansi.StringWidth(r.draft.View()), "rendering does not resize the input")

	r.SetWidth(rowWidth * 2)
	assert.Greater(t, ansi.StringWidth(r.draft.View()), before)
}

func TestTaskItem_ViewTruncatesLongTitles(t *testing.T) {
	tk := sampleTask()
	tk.Title = "An extremely long task title that cannot possibly fit"
	r := NewTaskItem(tk.ID, 200)

	view := r.View(tk, rowWidth, config.Layout24h, 0, 1)
	assert.Equal(t, rowWidth, ansi.StringWidth(view))
	assert.Contains(t, ansi.Strip(view), "…")
}

func TestTaskItem_ViewAnimated(t *testing.T) {
	tk := sampleTask()
	r := NewTaskItem(tk.ID, 200)

	shifted := ansi.Strip(r.View(tk, rowWidth, config.Layout24h, 2, 0.5))
	assert.Equal(t, rowWidth, ansi.StringWidth(shifted))
	assert.Contains(t, shifted, "    ○ Buy milk")

	left := ansi.Strip(r.View(tk, rowWidth, config.Layout24h, -2, 0.5))
	assert.Equal(t, rowWidth, ansi.StringWidth(left))
	assert.Contains(t, left, "○ Buy milk")
}

func TestTaskItem_HitTest(t *testing.T) {
	tk := sampleTask()

	t.Run("idle row", func(t *testing.T) {
		r := NewTaskItem(tk.ID, 200)
		assert.Equal(t, RowZoneCheckbox, r.HitTest(2, rowWidth))
		assert.Equal(t, RowZoneTitle, r.HitTest(6, rowWidth))
		assert.Equal(t, RowZoneNone, r.HitTest(0, rowWidth))
		assert.Equal(t, RowZoneNone, r.HitTest(37, rowWidth), "controls hidden without hover")
	})

	t.Run("hovered row", func(t *testing.T) {
		r := NewTaskItem(tk.ID, 200)
		r.SetHovered(true)
		view := r.View(tk, rowWidth, config.Layout24h, 0, 1)

		assert.Equal(t, RowZoneEdit, r.HitTest(tuitest.FindColumn(view, 0, "✎"), rowWidth))
		assert.Equal(t, RowZoneDelete, r.HitTest(tuitest.FindColumn(view, 0, "✕"), rowWidth))
		assert.Equal(t, RowZoneCheckbox, r.HitTest(tuitest.FindColumn(view, 0, "○"), rowWidth))
	})

	t.Run("editing row", func(t *testing.T) {
		r := NewTaskItem(tk.ID, 200)
		r.SetHovered(true)
		r.StartEdit(tk)
		view := r.View(tk, rowWidth, config.Layout24h, 0, 1)

		assert.Equal(t, RowZoneSave, r.HitTest(tuitest.FindColumn(view, 0, "Save"), rowWidth))
		assert.Equal(t, RowZoneCancel, r.HitTest(tuitest.FindColumn(view, 0, "Cancel"), rowWidth))
		assert.Equal(t, RowZoneTitle, r.HitTest(8, rowWidth))
	})
}
