package gradient

import (
	"fmt"
	"math/rand/v2"
)

// Colour is an RGB colour in #RRGGBB form.
type Colour string

// ParseColour returns s as a Colour when it is # followed by exactly six
// hexadecimal digits. The input is kept verbatim, including its case.
func ParseColour(s string) (Colour, error) {
	c := Colour(s)
	if !c.Valid() {
		return "", newDomainError(ErrInvalidColour, s)
	}
	return c, nil
}

// Valid reports whether c is well-formed.
func (c Colour) Valid() bool {
	if len(c) != 7 || c[0] != '#' {
		return false
	}
	for i := 1; i < len(c); i++ {
		if !isHexDigit(c[i]) {
			return false
		}
	}
	return true
}

func (c Colour) String() string {
	return string(c)
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// ColourGenerator produces colours on demand.
type ColourGenerator interface {
	Generate() Colour
}

// Generator draws each RGB channel independently and uniformly from [0,255].
// A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator reading from src. A nil src uses the
// runtime's randomly seeded source.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		return &Generator{}
	}
	return &Generator{rng: rand.New(src)}
}

// Generate returns a random colour with lowercase, zero-padded hex digits.
func (g *Generator) Generate() Colour {
	return Colour(fmt.Sprintf("#%02x%02x%02x", g.channel(), g.channel(), g.channel()))
}

func (g *Generator) channel() int {
	if g == nil || g.rng == nil {
		return rand.IntN(256)
	}
	return g.rng.IntN(256)
}

var _ ColourGenerator = (*Generator)(nil)
