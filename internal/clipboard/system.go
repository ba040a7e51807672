package clipboard

import (
	"context"
	"sync"

	"golang.design/x/clipboard"

	gradienterrors "github.com/alexisbeaulieu97/gradient/pkg/errors"
)

// System writes through the native clipboard (X11, Wayland via XWayland,
// macOS, Windows). Initialization happens on first use. On X11 the text is
// served by this process and disappears when it exits, so short-lived
// commands should prefer Command.
type System struct {
	once    sync.Once
	initErr error
}

// NewSystem returns a lazily initialized native clipboard sink.
func NewSystem() *System {
	return &System{}
}

// Write places text on the native clipboard.
func (s *System) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return gradienterrors.NewClipboardError(string(BackendSystem), err)
	}

	s.once.Do(func() {
		s.initErr = clipboard.Init()
	})
	if s.initErr != nil {
		return gradienterrors.NewClipboardError(string(BackendSystem), s.initErr)
	}

	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
