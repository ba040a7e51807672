// Package clipboard writes copied style declarations to the user's clipboard.
// Writes are fire-and-forget from the UI's point of view: callers log a
// failure but never surface it.
package clipboard

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Sink accepts text destined for the clipboard.
type Sink interface {
	Write(ctx context.Context, text string) error
}

// Backend names a Sink implementation.
type Backend string

const (
	BackendAuto    Backend = "auto"
	BackendOSC52   Backend = "osc52"
	BackendSystem  Backend = "system"
	BackendCommand Backend = "command"
	BackendNone    Backend = "none"
)

// New returns the sink for backend. OSC 52 sequences are written to out,
// which defaults to stderr so they do not interleave with the TUI frame.
func New(backend Backend, out io.Writer) (Sink, error) {
	if out == nil {
		out = os.Stderr
	}

	switch backend {
	case "", BackendAuto, BackendOSC52:
		return NewOSC52(out), nil
	case BackendSystem:
		return NewSystem(), nil
	case BackendCommand:
		return NewCommand(), nil
	case BackendNone:
		return Discard, nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q", backend)
	}
}

type discard struct{}

func (discard) Write(context.Context, string) error { return nil }

// Discard drops every write.
var Discard Sink = discard{}
