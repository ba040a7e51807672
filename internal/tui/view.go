package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/gradient/internal/domain/gradient"
	"github.com/alexisbeaulieu97/gradient/internal/tui/components"
)

const (
	previewHeight       = 5
	defaultPreviewWidth = 72
	minPreviewWidth     = 24
	maxPreviewWidth     = 120
	sliderWidth         = 36
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.titleView(),
		m.previewView(),
		m.statusView(),
		m.angleView(),
		m.colourView(gradient.SlotOne),
		m.colourView(gradient.SlotTwo),
		m.buttonView(),
		helpStyle.Render(m.help.View(m.keys)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) titleView() string {
	return titleStyle.Render(windowTitle)
}

// previewBounds returns the preview's first row, width and height on screen.
func (m Model) previewBounds() (top, width, height int) {
	return lipgloss.Height(m.titleView()), m.previewWidth(), previewHeight
}

func (m Model) previewWidth() int {
	if m.width <= 0 {
		return defaultPreviewWidth
	}
	return max(minPreviewWidth, min(maxPreviewWidth, m.width-2))
}

func (m Model) previewView() string {
	_, width, height := m.previewBounds()
	return components.Preview{
		Width:  width,
		Height: height,
		Angle:  m.settings.Angle,
		From:   string(m.settings.ColourOne),
		To:     string(m.settings.ColourTwo),
		Label:  m.settings.StyleDeclaration(),
	}.View()
}

func (m Model) statusView() string {
	text := fmt.Sprintf("(%s)", m.feedback.Status())
	if m.feedback.Copied() {
		return copiedStatusStyle.Render(text)
	}
	return statusStyle.Render(text)
}

func (m Model) label(f Focus, text string) string {
	if m.focus == f {
		return focusedLabelStyle.Render("› " + text)
	}
	return labelStyle.Render("  " + text)
}

func (m Model) angleView() string {
	slider := components.NewSlider(
		gradient.MinAngle,
		gradient.MaxAngle,
		sliderWidth,
		string(m.settings.ColourOne),
		string(m.settings.ColourTwo),
	)
	return controlStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.label(FocusAngle, fmt.Sprintf("Gradient Angle (%d)", m.settings.Angle)),
		"  "+slider.View(m.settings.Angle),
	))
}

func (m Model) colourView(slot gradient.Slot) string {
	focus := FocusColourOne
	if slot == gradient.SlotTwo {
		focus = FocusColourTwo
	}

	colour := m.settings.Colour(slot)
	swatch := lipgloss.NewStyle().Background(lipgloss.Color(string(colour))).Render("    ")
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(string(colour))).Render(string(colour))

	return controlStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.label(focus, "Colour ")+text,
		"  "+swatch+" "+m.inputs[slot].View(),
	))
}

func (m Model) buttonView() string {
	if m.focus == FocusGenerate {
		return focusedButtonStyle.Render("Generate New Gradient")
	}
	return buttonStyle.Render("Generate New Gradient")
}
