package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// Preview renders a block of cells painted with a two-colour linear gradient
// and an optional label centred on its middle row.
type Preview struct {
	Width  int
	Height int
	Angle  int
	From   string
	To     string
	Label  string
}

// View renders the preview.
func (p Preview) View() string {
	if p.Width <= 0 || p.Height <= 0 {
		return ""
	}

	from, err := colorful.Hex(p.From)
	if err != nil {
		from = colorful.Color{}
	}
	to, err := colorful.Hex(p.To)
	if err != nil {
		to = colorful.Color{}
	}

	label := []rune(p.Label)
	if room := p.Width - 2; len(label) > room {
		if room <= 1 {
			label = nil
		} else {
			label = append(label[:room-1], '…')
		}
	}
	labelRow := p.Height / 2
	labelStart := (p.Width - len(label)) / 2

	var b strings.Builder
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			c := from.BlendRgb(to, GradientPosition(x, y, p.Width, p.Height, p.Angle)).Clamped()
			style := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))

			ch := " "
			if y == labelRow && x >= labelStart && x < labelStart+len(label) {
				ch = string(label[x-labelStart])
				style = style.Foreground(lipgloss.Color(contrastText(c)))
			}
			b.WriteString(style.Render(ch))
		}
		if y < p.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// GradientPosition returns where cell (x, y) falls along a CSS gradient line
// of the given angle, from 0 (first colour) to 1 (second colour). 0deg points
// up and 90deg points right.
func GradientPosition(x, y, width, height, angle int) float64 {
	rad := float64(angle) * math.Pi / 180
	dx, dy := math.Sin(rad), -math.Cos(rad)

	w := float64(width)
	h := float64(height) * cellAspect
	px := float64(x) + 0.5 - w/2
	py := (float64(y)+0.5)*cellAspect - h/2

	length := math.Abs(w*dx) + math.Abs(h*dy)
	if length == 0 {
		return 0
	}

	t := (px*dx+py*dy)/length + 0.5
	return math.Max(0, math.Min(1, t))
}

func contrastText(bg colorful.Color) string {
	l, _, _ := bg.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
