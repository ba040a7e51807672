package clipboard

import (
	"context"
	"io"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"

	gradienterrors "github.com/alexisbeaulieu97/gradient/pkg/errors"
)

// Multiplexer tells OSC52 how to wrap its escape sequence.
type Multiplexer int

const (
	MultiplexerNone Multiplexer = iota
	MultiplexerTmux
	MultiplexerScreen
)

// DetectMultiplexer inspects the environment for tmux or GNU screen.
func DetectMultiplexer() Multiplexer {
	if os.Getenv("TMUX") != "" {
		return MultiplexerTmux
	}
	if os.Getenv("STY") != "" {
		return MultiplexerScreen
	}
	return MultiplexerNone
}

// OSC52 asks the terminal emulator to set the system clipboard. It works over
// SSH and needs no native clipboard libraries.
type OSC52 struct {
	out io.Writer
	mux Multiplexer
}

// NewOSC52 returns a sink writing to out, wrapped for the detected multiplexer.
func NewOSC52(out io.Writer) *OSC52 {
	return &OSC52{out: out, mux: DetectMultiplexer()}
}

// WithMultiplexer overrides the detected multiplexer.
func (o *OSC52) WithMultiplexer(mux Multiplexer) *OSC52 {
	return &OSC52{out: o.out, mux: mux}
}

// Write emits the OSC 52 sequence for text.
func (o *OSC52) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return gradienterrors.NewClipboardError(string(BackendOSC52), err)
	}

	seq := osc52.New(text)
	switch o.mux {
	case MultiplexerTmux:
		seq = seq.Tmux()
	case MultiplexerScreen:
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(o.out); err != nil {
		return gradienterrors.NewClipboardError(string(BackendOSC52), err)
	}
	return nil
}
