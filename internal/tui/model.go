package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gradient/internal/clipboard"
	"github.com/alexisbeaulieu97/gradient/internal/domain/gradient"
	"github.com/alexisbeaulieu97/gradient/internal/logger"
)

const windowTitle = "CSS Gradient Generator"

// Focus identifies the control receiving keyboard input.
type Focus int

const (
	FocusAngle Focus = iota
	FocusColourOne
	FocusColourTwo
	FocusGenerate
	focusCount
)

func (f Focus) next() Focus {
	return (f + 1) % focusCount
}

func (f Focus) prev() Focus {
	return (f + focusCount - 1) % focusCount
}

// slot returns the colour slot edited by f, if any.
func (f Focus) slot() (gradient.Slot, bool) {
	switch f {
	case FocusColourOne:
		return gradient.SlotOne, true
	case FocusColourTwo:
		return gradient.SlotTwo, true
	default:
		return 0, false
	}
}

// Options configures a Model. Zero values select defaults.
type Options struct {
	// Settings is the starting gradient; zero means angle 45 with two
	// generated colours.
	Settings         gradient.Settings
	Generator        gradient.ColourGenerator
	Clipboard        clipboard.Sink
	FeedbackDuration time.Duration
	FeedbackPolicy   gradient.FeedbackPolicy
	Logger           *logger.Logger
	Scheduler        Scheduler
}

// Model is the Bubble Tea model for the gradient generator.
type Model struct {
	settings  gradient.Settings
	feedback  gradient.CopyFeedback
	generator gradient.ColourGenerator
	clipboard clipboard.Sink
	log       *logger.Logger
	schedule  Scheduler

	feedbackDuration time.Duration

	focus  Focus
	inputs [2]textinput.Model
	keys   keyMap
	help   help.Model

	width    int
	height   int
	quitting bool
}

// NewModel constructs the model.
func NewModel(opts Options) Model {
	gen := opts.Generator
	if gen == nil {
		gen = gradient.NewGenerator(nil)
	}

	settings := opts.Settings
	if settings == (gradient.Settings{}) {
		settings = gradient.New(gen)
	}

	sink := opts.Clipboard
	if sink == nil {
		sink = clipboard.Discard
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	schedule := opts.Scheduler
	if schedule == nil {
		schedule = TickScheduler
	}

	duration := opts.FeedbackDuration
	if duration <= 0 {
		duration = gradient.DefaultFeedbackDuration
	}

	m := Model{
		settings:         settings,
		feedback:         gradient.NewCopyFeedback(opts.FeedbackPolicy),
		generator:        gen,
		clipboard:        sink,
		log:              log.WithFields(map[string]any{"component": "tui"}),
		schedule:         schedule,
		feedbackDuration: duration,
		focus:            FocusAngle,
		keys:             defaultKeyMap(),
		help:             help.New(),
	}

	for i := range m.inputs {
		m.inputs[i] = newColourInput()
	}
	m.syncInputs()

	return m
}

func newColourInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "#rrggbb"
	ti.CharLimit = 7
	ti.Width = 8
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Init starts the Bubble Tea program.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(windowTitle)
}

// Settings returns the current gradient.
func (m Model) Settings() gradient.Settings {
	return m.settings
}

// Copied reports whether the "copied" status is showing.
func (m Model) Copied() bool {
	return m.feedback.Copied()
}

// FeedbackState returns the copy status state machine position.
func (m Model) FeedbackState() gradient.FeedbackState {
	return m.feedback.State()
}

// Focus returns the focused control.
func (m Model) Focus() Focus {
	return m.focus
}

func (m Model) editing() bool {
	_, ok := m.focus.slot()
	return ok
}

// syncInputs copies the committed colours into the text inputs.
func (m *Model) syncInputs() {
	for i := range m.inputs {
		m.inputs[i].SetValue(string(m.settings.Colour(gradient.Slot(i))))
		m.inputs[i].CursorEnd()
	}
}
