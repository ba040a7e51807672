package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gradient/internal/clipboard"
	"github.com/alexisbeaulieu97/gradient/internal/domain/gradient"
)

// sequence hands out colours in order and repeats the last one.
type sequence struct {
	colours []gradient.Colour
	next    int
}

func (s *sequence) Generate() gradient.Colour {
	c := s.colours[s.next]
	if s.next < len(s.colours)-1 {
		s.next++
	}
	return c
}

// manualScheduler records timers instead of starting them. Executing the
// returned command yields the message immediately.
type manualScheduler struct {
	delays []time.Duration
}

func (s *manualScheduler) schedule(d time.Duration, msg tea.Msg) tea.Cmd {
	s.delays = append(s.delays, d)
	return func() tea.Msg { return msg }
}

type fixture struct {
	model     Model
	clipboard *clipboard.Memory
	scheduler *manualScheduler
}

func newFixture(t *testing.T, policy gradient.FeedbackPolicy) fixture {
	t.Helper()

	mem := clipboard.NewMemory()
	sched := &manualScheduler{}
	m := NewModel(Options{
		Generator:      &sequence{colours: []gradient.Colour{"#AABBCC", "#112233", "#445566", "#778899"}},
		Clipboard:      mem,
		FeedbackPolicy: policy,
		Scheduler:      sched.schedule,
	})
	return fixture{model: m, clipboard: mem, scheduler: sched}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// collect runs cmd and any batched commands, returning the messages produced.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// split separates clipboard results from expiry timers.
func split(msgs []tea.Msg) (written []clipboardWrittenMsg, expired []feedbackExpiredMsg) {
	for _, msg := range msgs {
		switch msg := msg.(type) {
		case clipboardWrittenMsg:
			written = append(written, msg)
		case feedbackExpiredMsg:
			expired = append(expired, msg)
		}
	}
	return written, expired
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
