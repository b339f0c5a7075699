package ui

import (
	"fmt"

	"github.com/desertthunder/ytaudio/internal/tasks"
)

const debugTip = "Use --debug for more details"

// Title renders a section heading.
func Title(s string) string {
	return styles.title.Render(s)
}

// Success renders a completed-download line in green.
func Success(s string) string {
	return styles.ok.Render(s)
}

// Warning renders a skip or advisory line in yellow.
func Warning(s string) string {
	return styles.warn.Render(s)
}

// Failure renders an error line in red.
func Failure(s string) string {
	return styles.err.Render(s)
}

// Help renders a dimmed hint.
func Help(s string) string {
	return styles.help.Render(s)
}

// Status colors an engine status message by its leading marker.
func Status(msg string) string {
	if tasks.IsSkipMessage(msg) {
		return Warning(msg)
	}
	return Success(msg)
}

// ErrorLines returns the red error line for err, followed by the debug tip when debug is off.
func ErrorLines(err error, debug bool) []string {
	lines := []string{Failure(fmt.Sprintf("❌ Error: %v", err))}
	if !debug {
		lines = append(lines, Help(debugTip))
	}
	return lines
}
