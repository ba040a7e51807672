package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gradient/internal/domain/gradient"
)

const angleStep = 15

// Update handles Bubble Tea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case clipboardWrittenMsg:
		if msg.err != nil {
			// The status line already says "copied"; failures are only logged.
			m.log.Error(msg.err, "clipboard write failed")
			return m, nil
		}
		m.log.WithFields(map[string]any{"bytes": len(msg.text)}).Debug("clipboard write complete")
		return m, nil

	case feedbackExpiredMsg:
		m.feedback = m.feedback.Expire(msg.token)
		return m, nil

	case ConfigReloadedMsg:
		if msg.FeedbackDuration > 0 {
			m.feedbackDuration = msg.FeedbackDuration
		}
		if msg.FeedbackPolicy != "" {
			m.feedback = m.feedback.WithPolicy(msg.FeedbackPolicy)
		}
		if msg.Clipboard != nil {
			m.clipboard = msg.Clipboard
		}
		m.log.WithFields(map[string]any{
			"feedback_duration": m.feedbackDuration.String(),
			"feedback_policy":   string(m.feedback.Policy()),
		}).Info("configuration reloaded")
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keys that work everywhere, then dispatches on
// whether a colour input is being edited.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.ForceCopy):
		return m.copyGradient()
	case key.Matches(msg, m.keys.ForceGenerate):
		return m.generate(), nil
	case key.Matches(msg, m.keys.Next):
		return m.setFocus(m.focus.next())
	case key.Matches(msg, m.keys.Prev):
		return m.setFocus(m.focus.prev())
	}

	if m.editing() {
		return m.handleInputKeys(msg)
	}
	return m.handleControlKeys(msg)
}

func (m Model) handleControlKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m.copyGradient()
	case key.Matches(msg, m.keys.Generate):
		return m.generate(), nil
	case key.Matches(msg, m.keys.Activate):
		if m.focus == FocusGenerate {
			return m.generate(), nil
		}
		return m.copyGradient()
	case key.Matches(msg, m.keys.Increase):
		return m.nudgeAngle(1), nil
	case key.Matches(msg, m.keys.Decrease):
		return m.nudgeAngle(-1), nil
	case key.Matches(msg, m.keys.StepUp):
		return m.nudgeAngle(angleStep), nil
	case key.Matches(msg, m.keys.StepDown):
		return m.nudgeAngle(-angleStep), nil
	case key.Matches(msg, m.keys.Min):
		m.settings = m.settings.WithAngle(gradient.MinAngle)
		return m, nil
	case key.Matches(msg, m.keys.Max):
		m.settings = m.settings.WithAngle(gradient.MaxAngle)
		return m, nil
	}
	return m, nil
}

// handleInputKeys feeds keys to the focused colour input. The colour is
// committed as soon as the text is a complete #RRGGBB value.
func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Leave):
		return m.setFocus(FocusAngle)
	case msg.Type == tea.KeyEnter:
		return m.copyGradient()
	}

	slot, _ := m.focus.slot()
	var cmd tea.Cmd
	m.inputs[slot], cmd = m.inputs[slot].Update(msg)

	if colour, err := gradient.ParseColour(strings.TrimSpace(m.inputs[slot].Value())); err == nil {
		m.settings = m.settings.WithColour(slot, colour)
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	top, width, height := m.previewBounds()
	if msg.Y >= top && msg.Y < top+height && msg.X >= 0 && msg.X < width {
		return m.copyGradient()
	}
	return m, nil
}

// copyGradient writes the current declaration to the clipboard and shows the
// copied status until its timer fires. Earlier timers are not cancelled.
func (m Model) copyGradient() (Model, tea.Cmd) {
	text := m.settings.StyleDeclaration()

	var token uint64
	m.feedback, token = m.feedback.Copy()

	m.log.WithFields(map[string]any{
		"declaration": text,
		"token":       token,
	}).Debug("copying gradient")

	return m, tea.Batch(
		writeClipboardCmd(m.clipboard, text),
		m.schedule(m.feedbackDuration, feedbackExpiredMsg{token: token}),
	)
}

func (m Model) generate() Model {
	m.settings = m.settings.Randomize(m.generator)
	m.syncInputs()
	m.log.WithFields(map[string]any{
		"colour_one": string(m.settings.ColourOne),
		"colour_two": string(m.settings.ColourTwo),
	}).Debug("generated new gradient")
	return m
}

func (m Model) nudgeAngle(delta int) Model {
	m.settings = m.settings.WithAngle(gradient.ClampAngle(m.settings.Angle + delta))
	return m
}

// setFocus moves focus, resetting any half-typed colour to the committed value.
func (m Model) setFocus(f Focus) (Model, tea.Cmd) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.syncInputs()

	m.focus = f
	if slot, ok := f.slot(); ok {
		return m, m.inputs[slot].Focus()
	}
	return m, nil
}
