package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Slider renders a read-only range control, filled with the gradient's own
// colours.
type Slider struct {
	bar progress.Model
	min int
	max int
}

// NewSlider creates a slider spanning [min, max] drawn width cells wide.
func NewSlider(min, max, width int, from, to string) Slider {
	bar := progress.New(
		progress.WithGradient(from, to),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	return Slider{bar: bar, min: min, max: max}
}

// Ratio returns how far value sits between min and max, clamped to [0,1].
func (s Slider) Ratio(value int) float64 {
	span := s.max - s.min
	if span <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, float64(value-s.min)/float64(span)))
}

// View renders the bar for value with its bounds on either side.
func (s Slider) View(value int) string {
	lo := boundStyle.Render(fmt.Sprintf("%d°", s.min))
	hi := boundStyle.Render(fmt.Sprintf("%d°", s.max))
	return lipgloss.JoinHorizontal(lipgloss.Center, lo, " ", s.bar.ViewAs(s.Ratio(value)), " ", hi)
}

var boundStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
