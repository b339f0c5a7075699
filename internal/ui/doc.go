// Package ui renders the status lines printed by the CLI.
//
// Completed downloads are green, skips yellow and errors red. Colors come from a small [lipgloss]
// [Palette] and degrade to plain text when the output is not a terminal, so the leading status
// markers stay parseable by scripts.
package ui
