package tui

import (
	"math"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/harmonica"

	"github.com/colonyops/tasklist/internal/core/config"
	"github.com/colonyops/tasklist/internal/core/task"
)

const (
	springFrequency = 10.0
	springDamping   = 0.5

	enterOffset    = 2.0 // cells a row starts to the right of its place
	exitDistance   = 8.0 // cells a row travels left while leaving
	springSettle   = 0.05
	springMaxTime  = 2 * time.Second
	headerDuration = 500 * time.Millisecond
)

// placeholderKey keys the empty-list placeholder in the AnimationStore.
// Task ids start at 1 so it never collides with a row.
const placeholderKey task.ID = 0

// AnimationKind identifies what a row animation is doing.
type AnimationKind int

const (
	AnimationEnter AnimationKind = iota + 1
	AnimationExit
)

// RowAnimation is the state of one row's enter or exit transition.
// Timing is counted in frames so a transition always spans the same number
// of renders regardless of timer jitter.
type RowAnimation struct {
	Kind      AnimationKind
	delay     int // frames left before the transition starts
	frames    int // frames elapsed since the transition started
	total     int // exit length in frames
	maxFrames int // cap on the enter spring
	position  float64
	velocity  float64
}

// Waiting reports whether the row is still held back by its stagger delay.
func (a RowAnimation) Waiting() bool { return a.delay > 0 }

// Offset returns the horizontal displacement in cells. Positive values move
// the row right.
func (a RowAnimation) Offset() int {
	switch a.Kind {
	case AnimationEnter:
		return int(math.Round(a.position))
	case AnimationExit:
		return -int(math.Round(a.progress() * exitDistance))
	}
	return 0
}

// Opacity returns the row's visibility in [0,1].
func (a RowAnimation) Opacity() float64 {
	switch a.Kind {
	case AnimationEnter:
		if a.Waiting() {
			return 0
		}
		return clamp01(1 - a.position/enterOffset)
	case AnimationExit:
		return 1 - a.progress()
	}
	return 1
}

func (a RowAnimation) progress() float64 {
	if a.total <= 0 {
		return 1
	}
	return clamp01(float64(a.frames) / float64(a.total))
}

func (a RowAnimation) done() bool {
	switch a.Kind {
	case AnimationEnter:
		if a.Waiting() {
			return false
		}
		settled := math.Abs(a.position) < springSettle && math.Abs(a.velocity) < springSettle
		return settled || a.frames >= a.maxFrames
	case AnimationExit:
		return a.frames >= a.total
	}
	return true
}

// FormTransition tracks the expand and collapse of the task form.
type FormTransition struct {
	open     bool
	progress float64
}

// Progress returns how far the form is expanded in [0,1].
func (f FormTransition) Progress() float64 { return f.progress }

// Visible reports whether any part of the form should render.
func (f FormTransition) Visible() bool { return f.open || f.progress > 0 }

// VisibleLines returns how many of the form's lines are shown.
func (f FormTransition) VisibleLines(height int) int {
	return int(math.Ceil(f.progress * float64(height)))
}

func (f FormTransition) settled() bool {
	return (f.open && f.progress >= 1) || (!f.open && f.progress <= 0)
}

// AnimationStore drives every frame-ticked transition: row enter and exit,
// the form expand and collapse, and the header fade on mount.
type AnimationStore struct {
	enabled bool
	frame   time.Duration
	exit    time.Duration
	form    time.Duration
	stagger time.Duration
	spring  harmonica.Spring

	rows       map[task.ID]RowAnimation
	formState  FormTransition
	header     time.Duration
	headerDone bool
	ticking    bool
}

// NewAnimationStore builds a store from the animation config. A disabled
// config yields a store whose transitions complete instantly.
func NewAnimationStore(cfg config.AnimationConfig) *AnimationStore {
	s := &AnimationStore{
		enabled: cfg.IsEnabled(),
		frame:   cfg.FrameInterval(),
		exit:    cfg.Exit,
		form:    cfg.Form,
		stagger: cfg.Stagger,
		rows:    make(map[task.ID]RowAnimation),

		headerDone: true,
	}
	if s.enabled {
		s.spring = harmonica.NewSpring(harmonica.FPS(cfg.FPS), springFrequency, springDamping)
	}
	return s
}

// Mount starts the header fade-in played once when the screen first appears.
func (s *AnimationStore) Mount() {
	if s.enabled {
		s.header = 0
		s.headerDone = false
	}
}

// Enabled reports whether transitions animate.
func (s *AnimationStore) Enabled() bool { return s.enabled }

// Stagger returns the delay for the row at index during the mount sequence.
func (s *AnimationStore) Stagger(index int) time.Duration {
	return time.Duration(index) * s.stagger
}

// Enter starts the enter transition for a row after delay.
func (s *AnimationStore) Enter(id task.ID, delay time.Duration) {
	if !s.enabled {
		return
	}
	s.rows[id] = RowAnimation{
		Kind:      AnimationEnter,
		delay:     s.frames(delay),
		position:  enterOffset,
		maxFrames: s.frames(springMaxTime),
	}
}

// Exit starts the exit transition for a row. It returns false when the row
// should be removed immediately.
func (s *AnimationStore) Exit(id task.ID) bool {
	if !s.enabled || s.exit <= 0 {
		delete(s.rows, id)
		return false
	}
	s.rows[id] = RowAnimation{
		Kind:  AnimationExit,
		total: max(s.frames(s.exit), 1),
	}
	return true
}

// Row returns the active animation for a row.
func (s *AnimationStore) Row(id task.ID) (RowAnimation, bool) {
	a, ok := s.rows[id]
	return a, ok
}

// frames converts d to a whole number of frames.
func (s *AnimationStore) frames(d time.Duration) int {
	if s.frame <= 0 {
		return 0
	}
	return int(math.Round(float64(d) / float64(s.frame)))
}

// Forget drops any animation for a row.
func (s *AnimationStore) Forget(id task.ID) { delete(s.rows, id) }

// OpenForm starts expanding the form.
func (s *AnimationStore) OpenForm() {
	s.formState.open = true
	if !s.enabled || s.form <= 0 {
		s.formState.progress = 1
	}
}

// CloseForm starts collapsing the form.
func (s *AnimationStore) CloseForm() {
	s.formState.open = false
	if !s.enabled || s.form <= 0 {
		s.formState.progress = 0
	}
}

// Form returns the form transition state.
func (s *AnimationStore) Form() FormTransition { return s.formState }

// HeaderOpacity returns the header's fade-in progress in [0,1].
func (s *AnimationStore) HeaderOpacity() float64 {
	if s.headerDone {
		return 1
	}
	return clamp01(float64(s.header) / float64(headerDuration))
}

// Active reports whether any transition still needs frames.
func (s *AnimationStore) Active() bool {
	return len(s.rows) > 0 || !s.formState.settled() || !s.headerDone
}

// FrameResult reports transitions that completed during a Tick.
type FrameResult struct {
	Exited     []task.ID
	FormClosed bool
}

// Tick advances every transition by one frame.
func (s *AnimationStore) Tick() FrameResult {
	var res FrameResult

	for id, a := range s.rows {
		if a.delay > 0 {
			a.delay--
			s.rows[id] = a
			continue
		}

		a.frames++
		if a.Kind == AnimationEnter {
			a.position, a.velocity = s.spring.Update(a.position, a.velocity, 0)
		}

		if a.done() {
			delete(s.rows, id)
			if a.Kind == AnimationExit {
				res.Exited = append(res.Exited, id)
			}
			continue
		}
		s.rows[id] = a
	}

	if !s.formState.settled() {
		step := float64(s.frame) / float64(s.form)
		if s.formState.open {
			s.formState.progress = math.Min(1, s.formState.progress+step)
		} else {
			s.formState.progress = math.Max(0, s.formState.progress-step)
			res.FormClosed = s.formState.progress <= 0
		}
	}

	if !s.headerDone {
		s.header += s.frame
		s.headerDone = s.header >= headerDuration
	}

	return res
}

// animTickMsg drives animation frames.
type animTickMsg time.Time

// StartTicking returns the frame command when transitions are pending and
// no tick is in flight.
func (s *AnimationStore) StartTicking() tea.Cmd {
	if s.ticking || !s.enabled || !s.Active() {
		return nil
	}
	s.ticking = true
	return s.scheduleTick()
}

// Continue is called after a tick was handled and schedules the next one
// while transitions remain.
func (s *AnimationStore) Continue() tea.Cmd {
	if !s.Active() {
		s.ticking = false
		return nil
	}
	return s.scheduleTick()
}

func (s *AnimationStore) scheduleTick() tea.Cmd {
	return tea.Tick(s.frame, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
