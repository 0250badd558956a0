package color

import "github.com/fatih/color"

var (
	FgRed     = color.New(color.FgRed).SprintfFunc()
	FgGreen   = color.New(color.FgGreen).SprintfFunc()
	FgCyan    = color.New(color.FgCyan).SprintfFunc()
	FgMagenta = color.New(color.FgMagenta).SprintfFunc()
	FgYellow  = color.New(color.FgYellow).SprintfFunc()
	Bold      = color.New(color.Bold).SprintfFunc()
)
