// Package styles defines the visual styling for cupidconf's terminal
// output. All styles use semantic names and adaptive colors that adjust
// to light and dark terminal themes.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors
var (
	KeyColor = lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FAFD7"}

	ValueColor = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#DDDDDD"}

	MutedColor = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}

	SuccessColor = lipgloss.AdaptiveColor{Light: "#005F00", Dark: "#5FD75F"}

	ErrorColor = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}
)

// Base styles
var (
	KeyStyle = lipgloss.NewStyle().
			Foreground(KeyColor).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ValueColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	CountStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)
)
