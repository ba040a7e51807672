package clipboard

import (
	"context"
	"errors"

	atotto "github.com/atotto/clipboard"

	gradienterrors "github.com/alexisbeaulieu97/gradient/pkg/errors"
)

// ErrNoClipboardTool is returned when no clipboard program (wl-copy, xclip,
// xsel, pbcopy, or the Windows API) is available.
var ErrNoClipboardTool = errors.New("no clipboard tool found")

// Command hands text to the platform clipboard program. The program owns the
// selection, so the text survives after this process exits.
type Command struct {
	write       func(string) error
	unsupported func() bool
}

// NewCommand returns a sink backed by github.com/atotto/clipboard.
func NewCommand() *Command {
	return &Command{
		write:       atotto.WriteAll,
		unsupported: func() bool { return atotto.Unsupported },
	}
}

// Write copies text. The underlying program cannot be interrupted, so a
// cancelled ctx only stops the wait for it.
func (c *Command) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return gradienterrors.NewClipboardError(string(BackendCommand), err)
	}
	if c.unsupported != nil && c.unsupported() {
		return gradienterrors.NewClipboardError(string(BackendCommand), ErrNoClipboardTool)
	}

	done := make(chan error, 1)
	go func() { done <- c.write(text) }()

	select {
	case err := <-done:
		if err != nil {
			return gradienterrors.NewClipboardError(string(BackendCommand), err)
		}
		return nil
	case <-ctx.Done():
		return gradienterrors.NewClipboardError(string(BackendCommand), ctx.Err())
	}
}
