package tui

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gradient/internal/clipboard"
	"github.com/alexisbeaulieu97/gradient/internal/domain/gradient"
	"github.com/alexisbeaulieu97/gradient/internal/logger"
)

const (
	declaration45  = "background: linear-gradient(45deg, #AABBCC 0%, #112233 100%)"
	declaration180 = "background: linear-gradient(180deg, #AABBCC 0%, #112233 100%)"
)

func TestInitialDescriptor(t *testing.T) {
	t.Parallel()

	f := newFixture(t, gradient.FeedbackIndependent)
	require.Equal(t, declaration45, f.model.Settings().StyleDeclaration())
}

func TestSetAngleThenDescriptor(t *testing.T) {
	t.Parallel()

	f := newFixture(t, gradient.FeedbackIndependent)
	m := f.model
	m.settings = m.settings.WithAngle(180)
	require.Equal(t, declaration180, m.Settings().StyleDeclaration())
}

func TestCopyWritesClipboardAndExpires(t *testing.T) {
	t.Parallel()

	f := newFixture(t, gradient.FeedbackIndependent)

	m, cmd := update(t, f.model, keyRunes("c"))
	require.True(t, m.Copied(), "flag is set immediately")
	require.Equal(t, gradient.FeedbackShowingCopied, m.FeedbackState())

	written, expired := split(collect(cmd))
	require.Len(t, written, 1)
	require.NoError(t, written[0].err)
	require.Equal(t, []string{declaration45}, f.clipboard.Writes())
	require.Equal(t, []time.Duration{2000 * time.Millisecond}, f.scheduler.delays)
	require.Len(t, expired, 1)

	m, _ = update(t, m, written[0])
	require.True(t, m.Copied())

	m, _ = update(t, m, expired[0])
	require.False(t, m.Copied())
	require.Equal(t, gradient.FeedbackIdle, m.FeedbackState())
}

// Two copies in quick succession with independent timers: both writes reach
// the clipboard, and the first timer to fire hides the message.
func TestRapidCopiesIndependentTimers(t *testing.T) {
	t.Parallel()

	f := newFixture(t, gradient.FeedbackIndependent)

	m, first := update(t, f.model, keyRunes("c"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	m, second := update(t, m, keyRunes("c"))

	_, firstExpired := split(collect(first))
	_, secondExpired := split(collect(second))
	require.Equal(t, []string{
		declaration45,
		"background: linear-gradient(360deg, #AABBCC 0%, #112233 100%)",
	}, f.clipboard.Writes())
	require.Len(t, f.scheduler.delays, 2)

	require.True(t, m.Copied())
	m, _ = update(t, m, firstExpired[0])
	require.False(t, m.Copied(), "first timer resets the flag even after a later copy")

	m, _ = update(t, m, secondExpired[0])
	require.False(t, m.Copied())
}

func TestRapidCopiesRestartPolicy(t *testing.T) {
	t.Parallel()

	f := newFixture(t, gradient.FeedbackRestart)

	m, first := update(t, f.model, keyRunes("c"))
	m, second := update(t, m, keyRunes("c"))

	_, firstExpired := split(collect(first))
	_, secondExpired := split(collect(second))
	require.Len(t, f.clipboard.Writes(), 2)

	m, _ = update(t, m, firstExpired[0])
	require.True(t, m.Copied(), "stale timer is ignored")

	m, _ = update(t, m, secondExpired[0])
	require.False(t, m.Copied())
}

func TestClipboardFailureStillShowsCopied(t *testing.T) {
	t.Parallel()

	f := newFixture(t, gradient.FeedbackIndependent)
	f.clipboard.FailWith(errors.New("permission denied"))

	m, cmd := update(t, f.model, keyRunes("c"))
	written, _ := split(collect(cmd))
	require.Len(t, written, 1)
	require.Error(t, written[0].err)

	m, next := update(t, m, written[0])
	require.Nil(t, next)
	require.True(t, m.Copied())
}

func TestClipboardFailureIsLogged(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Format: logger.FormatJSON, Writer: buf})
	require.NoError(t, err)

	mem := clipboard.NewMemory()
	mem.FailWith(errors.New("permission denied"))
	m := NewModel(Options{
		Generator: &sequence{colours: []gradient.Colour{"#AABBCC", "#112233"}},
		Clipboard: mem,
		Logger:    log,
		Scheduler: (&manualScheduler{}).schedule,
	})

	m, cmd := update(t, m, keyRunes("c"))
	written, _ := split(collect(cmd))
	require.Len(t, written, 1)
	_, _ = update(t, m, written[0])

	var failure map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["message"] == "clipboard write failed" {
			failure = entry
		}
	}
	require.NotNil(t, failure, "log:\n%s", buf.String())
	require.Equal(t, "error", failure["level"])
	require.Equal(t, "tui", failure["component"])
	require.Contains(t, failure["error"], "permission denied")
}

func TestCopyKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{name: "c", msg: keyRunes("c")},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}},
		{name: "space", msg: keyRunes(" ")},
		{name: "ctrl+y", msg: tea.KeyMsg{Type: tea.KeyCtrlY}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, gradient.FeedbackIndependent)
			m, cmd := update(t, f.model, tt.msg)
			collect(cmd)
			require.True(t, m.Copied())
			require.Equal(t, []string{declaration45}, f.clipboard.Writes())
		})
	}
}

func TestGenerateKeepsAngle(t *testing.T) {
	t.Parallel()

	f := newFixture(t, gradient.FeedbackIndependent)
	m, _ := update(t, f.model, tea.KeyMsg{Type: tea.KeyShiftRight})
	require.Equal(t, 60, m.Settings().Angle)

	m, cmd := update(t, m, keyRunes("g"))
	require.Nil(t, cmd)
	assert.Equal(t, 60, m.Settings().Angle)
	assert.Equal(t, gradient.Colour("#445566"), m.Settings().ColourOne)
	assert.Equal(t, gradient.Colour("#778899"), m.Settings().ColourTwo)
	assert.Equal(t, "#445566", m.inputs[0].Value())
	assert.Equal(t, "#778899", m.inputs[1].Value())
	assert.Empty(t, f.clipboard.Writes())
}

func TestGenerateButtonActivation(t *testing.T) {
	t.Parallel()

	f := newFixture(t, gradient.FeedbackIndependent)
	m, _ := update(t, f.model, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, FocusGenerate, m.Focus())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, gradient.Colour("#445566"), m.Settings().ColourOne)
	require.False(t, m.Copied())
}

func TestAngleKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start int
		msg   tea.KeyMsg
		want  int
	}{
		{name: "right", start: 45, msg: tea.KeyMsg{Type: tea.KeyRight}, want: 46},
		{name: "l", start: 45, msg: keyRunes("l"), want: 46},
		{name: "left", start: 45, msg: tea.KeyMsg{Type: tea.KeyLeft}, want: 44},
		{name: "h", start: 45, msg: keyRunes("h"), want: 44},
		{name: "shift+right", start: 45, msg: tea.KeyMsg{Type: tea.KeyShiftRight}, want: 60},
		{name: "shift+left", start: 45, msg: tea.KeyMsg{Type: tea.KeyShiftLeft}, want: 30},
		{name: "home", start: 45, msg: tea.KeyMsg{Type: tea.KeyHome}, want: 0},
		{name: "end", start: 45, msg: tea.KeyMsg{Type: tea.KeyEnd}, want: 360},
		{name: "clamped at max", start: 360, msg: tea.KeyMsg{Type: tea.KeyRight}, want: 360},
		{name: "clamped at min", start: 5, msg: tea.KeyMsg{Type: tea.KeyShiftLeft}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, gradient.FeedbackIndependent)
			m := f.model
			m.settings = m.settings.WithAngle(tt.start)

			m, _ = update(t, m, tt.msg)
			require.Equal(t, tt.want, m.Settings().Angle)
		})
	}
}

func TestColourInputCommitsCompleteHex(t *testing.T) {
	t.Parallel()

	f := newFixture(t, gradient.FeedbackIndependent)
	m, _ := update(t, f.model, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, FocusColourOne, m.Focus())

	for i := 0; i < 6; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	require.Equal(t, "#", m.inputs[0].Value())

	m, _ = update(t, m, keyRunes("c0ffe"))
	require.Equal(t, gradient.Colour("#AABBCC"), m.Settings().ColourOne, "partial value is not committed")
	require.False(t, m.Copied(), "typing c while editing must not copy")
	require.Empty(t, f.clipboard.Writes())

	m, _ = update(t, m, keyRunes("e"))
	require.Equal(t, gradient.Colour("#c0ffee"), m.Settings().ColourOne)
	require.Equal(t, gradient.Colour("#112233"), m.Settings().ColourTwo)
	require.Equal(t, "background: linear-gradient(45deg, #c0ffee 0%, #112233 100%)", m.Settings().StyleDeclaration())
}

func TestColourInputEscapeRestoresCommittedValue(t *testing.T) {
	t.Parallel()

	f := newFixture(t, gradient.FeedbackIndependent)
	m, _ := update(t, f.model, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, FocusColourTwo, m.Focus())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, "#11223", m.inputs[1].Value())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, FocusAngle, m.Focus())
	require.Equal(t, "#112233", m.inputs[1].Value())
	require.Equal(t, gradient.Colour("#112233"), m.Settings().ColourTwo)
}

func TestEnterInColourInputCopies(t *testing.T) {
	t.Parallel()

	f := newFixture(t, gradient.FeedbackIndependent)
	m, _ := update(t, f.model, tea.KeyMsg{Type: tea.KeyTab})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	collect(cmd)
	require.True(t, m.Copied())
	require.Equal(t, []string{declaration45}, f.clipboard.Writes())
}

func TestGlobalKeysWorkWhileEditing(t *testing.T) {
	t.Parallel()

	f := newFixture(t, gradient.FeedbackIndependent)
	m, _ := update(t, f.model, tea.KeyMsg{Type: tea.KeyTab})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	require.Equal(t, gradient.Colour("#445566"), m.Settings().ColourOne)
	require.Equal(t, "#445566", m.inputs[0].Value())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	collect(cmd)
	require.Equal(t, []string{"background: linear-gradient(45deg, #445566 0%, #778899 100%)"}, f.clipboard.Writes())

	m, _ = update(t, m, keyRunes("q"))
	require.Equal(t, FocusColourOne, m.Focus(), "q is text while editing")
	require.False(t, m.quitting)
}

func TestMouseClickOnPreviewCopies(t *testing.T) {
	t.Parallel()

	f := newFixture(t, gradient.FeedbackIndependent)
	top, width, height := f.model.previewBounds()
	require.Equal(t, 2, top)

	tests := []struct {
		name   string
		msg    tea.MouseMsg
		copies bool
	}{
		{name: "inside", msg: tea.MouseMsg{X: 3, Y: top, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, copies: true},
		{name: "last row", msg: tea.MouseMsg{X: width - 1, Y: top + height - 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, copies: true},
		{name: "title", msg: tea.MouseMsg{X: 3, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}},
		{name: "below", msg: tea.MouseMsg{X: 3, Y: top + height, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}},
		{name: "right of preview", msg: tea.MouseMsg{X: width, Y: top, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}},
		{name: "release", msg: tea.MouseMsg{X: 3, Y: top, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}},
		{name: "right button", msg: tea.MouseMsg{X: 3, Y: top, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := newFixture(t, gradient.FeedbackIndependent)
			m, cmd := update(t, fx.model, tt.msg)
			collect(cmd)
			require.Equal(t, tt.copies, m.Copied())
			if tt.copies {
				require.Equal(t, []string{declaration45}, fx.clipboard.Writes())
			} else {
				require.Empty(t, fx.clipboard.Writes())
			}
		})
	}
}

func TestConfigReloadChangesFeedback(t *testing.T) {
	t.Parallel()

	f := newFixture(t, gradient.FeedbackIndependent)
	mem := clipboard.NewMemory()

	m, _ := update(t, f.model, ConfigReloadedMsg{
		FeedbackDuration: 3 * time.Second,
		FeedbackPolicy:   gradient.FeedbackRestart,
		Clipboard:        mem,
	})
	require.Equal(t, gradient.FeedbackRestart, m.feedback.Policy())

	m, cmd := update(t, m, keyRunes("c"))
	collect(cmd)
	require.Equal(t, []time.Duration{3 * time.Second}, f.scheduler.delays)
	require.Equal(t, []string{declaration45}, mem.Writes())
	require.Empty(t, f.clipboard.Writes())
	require.Equal(t, declaration45, m.Settings().StyleDeclaration(), "gradient is untouched by reloads")
}

func TestConfigReloadKeepsUnsetFields(t *testing.T) {
	t.Parallel()

	f := newFixture(t, gradient.FeedbackRestart)
	m, _ := update(t, f.model, ConfigReloadedMsg{})
	require.Equal(t, gradient.FeedbackRestart, m.feedback.Policy())
	require.Equal(t, gradient.DefaultFeedbackDuration, m.feedbackDuration)
	require.Equal(t, f.clipboard, m.clipboard)
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyCtrlC}} {
		m, cmd := update(t, NewModel(Options{}), msg)
		require.True(t, m.quitting)
		require.Equal(t, []tea.Msg{tea.QuitMsg{}}, collect(cmd))
		require.Empty(t, m.View())
	}
}

func TestHelpToggle(t *testing.T) {
	t.Parallel()

	m, _ := update(t, NewModel(Options{}), keyRunes("?"))
	require.True(t, m.help.ShowAll)

	m, _ = update(t, m, keyRunes("?"))
	require.False(t, m.help.ShowAll)
}

func TestUnknownMessageIsIgnored(t *testing.T) {
	t.Parallel()

	f := newFixture(t, gradient.FeedbackIndependent)
	m, cmd := update(t, f.model, struct{}{})
	require.Nil(t, cmd)
	require.Equal(t, f.model.Settings(), m.Settings())
}
