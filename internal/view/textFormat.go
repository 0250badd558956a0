package view

import (
	"fmt"
	"strings"
)

// TrimTextToWidth Cuts off end of every line if longer than width. Fills lines to width with spaces.
func TrimTextToWidth(width int, out string) string {
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) > width {
			lines[i] = string(runes[:width])
		} else {
			lines[i] = padRight(width, line, len(runes))
		}
	}
	return strings.Join(lines, "\n")
}

// WordWrap breaks text on spaces so no line exceeds width. Words longer than width are split.
func WordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var lines []string
	var line []rune
	for _, word := range strings.Fields(text) {
		runes := []rune(word)
		if len(line) > 0 && len(line)+1+len(runes) > width {
			lines = append(lines, string(line))
			line = nil
		}
		if len(line) > 0 {
			line = append(line, ' ')
		}
		line = append(line, runes...)
		for len(line) > width {
			lines = append(lines, string(line[:width]))
			line = line[width:]
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return strings.Join(lines, "\n")
}

func padRight(width int, line string, runeCount int) string {
	if runeCount >= width {
		return line
	}
	return fmt.Sprintf("%s%s", line, strings.Repeat(" ", width-runeCount))
}
