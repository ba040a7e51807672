package gradient

import "fmt"

const (
	DefaultAngle = 45
	MinAngle     = 0
	MaxAngle     = 360
)

// Slot names one of the two gradient colours.
type Slot int

const (
	SlotOne Slot = iota
	SlotTwo
)

func (s Slot) String() string {
	switch s {
	case SlotOne:
		return "colour_one"
	case SlotTwo:
		return "colour_two"
	default:
		return fmt.Sprintf("slot(%d)", int(s))
	}
}

// Settings is the gradient being edited. Values are never mutated in place;
// every operation returns an updated copy.
type Settings struct {
	Angle     int
	ColourOne Colour
	ColourTwo Colour
}

// New returns settings at the default angle with two generated colours.
func New(gen ColourGenerator) Settings {
	return Settings{
		Angle:     DefaultAngle,
		ColourOne: gen.Generate(),
		ColourTwo: gen.Generate(),
	}
}

// WithAngle returns s with the angle replaced. The value is stored as-is;
// range enforcement belongs to the input control.
func (s Settings) WithAngle(degrees int) Settings {
	s.Angle = degrees
	return s
}

// WithColour returns s with the colour in slot replaced verbatim.
func (s Settings) WithColour(slot Slot, c Colour) Settings {
	switch slot {
	case SlotOne:
		s.ColourOne = c
	case SlotTwo:
		s.ColourTwo = c
	}
	return s
}

// Colour returns the colour held in slot.
func (s Settings) Colour(slot Slot) Colour {
	if slot == SlotTwo {
		return s.ColourTwo
	}
	return s.ColourOne
}

// Randomize returns s with both colours regenerated and the angle unchanged.
func (s Settings) Randomize(gen ColourGenerator) Settings {
	s.ColourOne = gen.Generate()
	s.ColourTwo = gen.Generate()
	return s
}

// Descriptor renders the CSS linear-gradient function for s.
func (s Settings) Descriptor() string {
	return fmt.Sprintf("linear-gradient(%ddeg, %s 0%%, %s 100%%)", s.Angle, s.ColourOne, s.ColourTwo)
}

// StyleDeclaration renders the background declaration copied to the clipboard.
func (s Settings) StyleDeclaration() string {
	return "background: " + s.Descriptor()
}

// ClampAngle limits degrees to [MinAngle, MaxAngle] the way a range slider does.
func ClampAngle(degrees int) int {
	if degrees < MinAngle {
		return MinAngle
	}
	if degrees > MaxAngle {
		return MaxAngle
	}
	return degrees
}

// ValidateAngle rejects angles a range slider could not produce.
func ValidateAngle(degrees int) error {
	if degrees < MinAngle || degrees > MaxAngle {
		return newDomainError(ErrInvalidAngle, fmt.Sprint(degrees))
	}
	return nil
}
