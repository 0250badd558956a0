package view

import (
	"context"
	"fmt"
	"io"
	"time"
)

// RunTTYRenderLoop re-renders r in place until ctx is canceled, then erases what it rendered.
func RunTTYRenderLoop(ctx context.Context, r View, out io.Writer, width func() int, refresh time.Duration) {
	lineCount := r.Render(width())

	ticker := time.NewTicker(refresh)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			if lineCount > 0 {
				_, _ = fmt.Fprint(out, ansiLineOffset(lineCount)+ansiClearToEnd)
			}
			return
		case <-ticker.C:
			if lineCount > 0 {
				_, err := fmt.Fprint(out, ansiLineOffset(lineCount))
				if err != nil {
					return
				}
			}
			lineCount = r.Render(width())
		}
	}
}
