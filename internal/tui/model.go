package tui

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/tasklist/internal/core/config"
	"github.com/colonyops/tasklist/internal/core/logging"
	corenotify "github.com/colonyops/tasklist/internal/core/notify"
	"github.com/colonyops/tasklist/internal/core/task"
	"github.com/colonyops/tasklist/internal/tui/components"
	"github.com/colonyops/tasklist/internal/tui/notify"
	"github.com/colonyops/tasklist/pkg/kv"
)

const placeholderText = "No tasks yet. Add one to get started!"

// Options configures the root model.
type Options struct {
	Store *task.Store // Task store (a fresh one is created when nil)
	Bus   *notify.Bus // Notification bus feeding toasts (optional)
}

// focusArea is the component receiving key input.
type focusArea int

const (
	focusList focusArea = iota
	focusForm
	focusEdit
)

// ghost is a deleted task still rendered while its exit animation plays.
// line is its position among all rendered entries, ghosts included.
type ghost struct {
	task task.Task
	line int
}

// Model is the root Bubble Tea model. It owns the task store and all UI
// state; child components only record results that Model applies.
type Model struct {
	cfg   *config.Config
	store *task.Store
	bus   *notify.Bus
	log   zerolog.Logger

	rows            *kv.Store[task.ID, *TaskItem]
	anims           *AnimationStore
	toastController *ToastController
	toastView       *ToastView
	keys            KeyMap
	help            help.Model

	form     *TaskForm
	formOpen bool
	focus    focusArea
	editing  task.ID
	ghosts   []ghost
	cursor   int

	helpDialog    *components.HelpDialog // nil unless the help overlay is open
	buttonHovered bool
	mounted       bool
	quitting      bool
	width         int
	height        int
	timeLayout    string
}

// New creates the root model.
func New(cfg *config.Config, opts Options) Model {
	store := opts.Store
	if store == nil {
		store = task.NewStore(logging.Component("tasks"))
	}

	bus := opts.Bus
	if bus == nil {
		bus = notify.NewBus()
	}

	anims := NewAnimationStore(cfg.TUI.Animations)
	toastCtrl := NewToastController(defaultToastTTL)
	if cfg.TUI.ToastsEnabled() {
		bus.Subscribe(func(n corenotify.Notification) {
			toastCtrl.Push(n)
		})
	} else {
		bus.Mute(true)
	}

	m := Model{
		cfg:             cfg,
		store:           store,
		bus:             bus,
		log:             logging.Component("tui"),
		rows:            kv.New[task.ID, *TaskItem](),
		anims:           anims,
		toastController: toastCtrl,
		toastView:       NewToastView(toastCtrl, anims.Enabled()),
		keys:            DefaultKeyMap(),
		help:            help.New(),
		timeLayout:      cfg.TUI.TimeLayout(),
	}
	m.setCursor(0)
	return m
}

// Store returns the task store backing the model.
func (m Model) Store() *task.Store { return m.store }

// FormOpen reports whether the task form is open.
func (m Model) FormOpen() bool { return m.formOpen }

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles a message and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	// Window
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	// Frame ticks
	case animTickMsg:
		return m.handleAnimTick()
	case toastTickMsg:
		return m.handleToastTick()

	// Input
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)
	}

	return m.handleFallthrough(msg)
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// row returns the registry entry for id, creating it on first use.
func (m Model) row(id task.ID) *TaskItem {
	return m.rows.GetOrCreate(id, func() *TaskItem {
		return NewTaskItem(id, m.cfg.TUI.MaxTitleLength)
	})
}

// focusedTask returns the task under the cursor.
func (m Model) focusedTask() (task.Task, bool) {
	list := m.store.List()
	if m.cursor < 0 || m.cursor >= list.Len() {
		return task.Task{}, false
	}
	return list.At(m.cursor), true
}

// setCursor moves the cursor, clamped to the list, and makes the row under
// it the only hovered row.
func (m *Model) setCursor(i int) {
	n := m.store.Len()
	m.cursor = max(min(i, n-1), 0)

	for idx, t := range m.store.Tasks() {
		m.row(t.ID).SetHovered(idx == m.cursor)
	}
}

// pruneRows drops row state for tasks that no longer exist.
func (m *Model) pruneRows() {
	removed := m.rows.Retain(func(id task.ID) bool {
		_, ok := m.store.Get(id)
		return ok
	})
	if removed > 0 {
		m.log.Debug().Int("removed", removed).Int("rows", m.rows.Len()).Msg("pruned row state")
	}
}

// ensureToastTick starts the toast timer when toasts are showing.
func (m *Model) ensureToastTick() tea.Cmd {
	if !m.toastController.HasToasts() || m.toastController.Ticking() {
		return nil
	}
	m.toastController.SetTicking(true)
	return scheduleToastTick()
}
