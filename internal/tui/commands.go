package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gradient/internal/clipboard"
)

const clipboardTimeout = 2 * time.Second

// Scheduler delivers msg after d. Each call schedules an independent timer.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

// TickScheduler schedules msg with tea.Tick.
func TickScheduler(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// writeClipboardCmd writes text to sink off the update loop.
func writeClipboardCmd(sink clipboard.Sink, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clipboardTimeout)
		defer cancel()

		return clipboardWrittenMsg{text: text, err: sink.Write(ctx, text)}
	}
}
