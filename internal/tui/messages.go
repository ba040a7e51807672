package tui

import (
	"time"

	"github.com/alexisbeaulieu97/gradient/internal/clipboard"
	"github.com/alexisbeaulieu97/gradient/internal/domain/gradient"
)

// ConfigReloadedMsg carries settings from a configuration file that changed
// while the UI is running. Zero fields leave the current value in place.
// The gradient itself is live user state and is never replaced.
type ConfigReloadedMsg struct {
	FeedbackDuration time.Duration
	FeedbackPolicy   gradient.FeedbackPolicy
	Clipboard        clipboard.Sink
}

// clipboardWrittenMsg reports the outcome of a clipboard write.
type clipboardWrittenMsg struct {
	text string
	err  error
}

// feedbackExpiredMsg fires when a copy's feedback timer elapses.
type feedbackExpiredMsg struct {
	token uint64
}
