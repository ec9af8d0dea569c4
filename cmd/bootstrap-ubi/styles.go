package main

import "github.com/charmbracelet/lipgloss"

// ColorWarning is amber - used for the PATH advisory.
const ColorWarning = lipgloss.Color("#F59E0B")

// WarningStyle is for advisory messages that never affect the exit code.
var WarningStyle = lipgloss.NewStyle().
	Foreground(ColorWarning)
