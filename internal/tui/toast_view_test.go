package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tasklist/internal/core/notify"
	"github.com/colonyops/tasklist/internal/core/styles"
	"github.com/colonyops/tasklist/pkg/tuitest"
)

func TestToastView_View_empty(t *testing.T) {
	v := NewToastView(NewToastController(0), true)

	assert.Empty(t, v.View())
}

func TestToastView_View_renders_icon_and_message(t *testing.T) {
	c := NewToastController(0)
	v := NewToastView(c, false)

	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "test msg"})

	out := tuitest.StripANSI(v.View())
	require.NotEmpty(t, out)
	assert.Contains(t, out, styles.CurrentIcons.Info)
	assert.Contains(t, out, "test msg")
}

func TestToastView_View_stacks_multiple(t *testing.T) {
	c := NewToastController(0)
	v := NewToastView(c, false)

	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "first"})
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "second"})

	out := v.View()
	firstIdx := strings.Index(out, "first")
	secondIdx := strings.Index(out, "second")

	require.NotEqual(t, -1, firstIdx)
	require.NotEqual(t, -1, secondIdx)
	assert.Less(t, firstIdx, secondIdx)
}

func TestToastView_View_fading_keeps_text(t *testing.T) {
	c := NewToastController(0)
	v := NewToastView(c, true)

	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "almost gone"})
	c.Tick(defaultToastTTL - 100*time.Millisecond)

	assert.Contains(t, tuitest.StripANSI(v.View()), "almost gone")
}

func TestToastView_Overlay_empty_returns_background(t *testing.T) {
	v := NewToastView(NewToastController(0), true)

	bg := "background content"
	assert.Equal(t, bg, v.Overlay(bg, 80, 24))
}

func TestToastView_Overlay_positions_lower_right(t *testing.T) {
	c := NewToastController(0)
	v := NewToastView(c, false)

	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "positioned"})

	width := 120
	height := 40

	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	bg := strings.Join(rows, "\n")

	out := v.Overlay(bg, width, height)

	toastLine := tuitest.FindLine(out, "positioned")
	require.NotEqual(t, -1, toastLine, "toast text not found in output lines")
	assert.Greater(t, toastLine, height/2, "toast should be in the lower half")
	assert.Greater(t, tuitest.FindColumn(out, toastLine, "positioned"), width/2)
}
