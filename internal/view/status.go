package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	"golang.org/x/term"

	"gpc/internal/color"
	"gpc/internal/ext"
)

const defaultTerminalWidth = 80

// TerminalStatus is the user facing status output: a spinner while work is in flight and plain messages after.
// Outside a terminal the spinner message is printed once instead of animated.
type TerminalStatus struct {
	stdout  io.Writer
	stderr  io.Writer
	isTTY   bool
	width   func() int
	spinner spinner.Spinner

	mu         sync.Mutex
	stopLoop   context.CancelFunc
	loopExited chan struct{}
}

func NewTerminalStatus(stdout io.Writer, stderr io.Writer, isTTY bool, width func() int) *TerminalStatus {
	return &TerminalStatus{
		stdout:  stdout,
		stderr:  stderr,
		isTTY:   isTTY,
		width:   width,
		spinner: spinner.MiniDot,
	}
}

func NewStdTerminalStatus() *TerminalStatus {
	fd := int(os.Stdout.Fd())
	return NewTerminalStatus(os.Stdout, os.Stderr, term.IsTerminal(fd), func() int {
		width, _, err := term.GetSize(fd)
		if err != nil || width <= 0 {
			return defaultTerminalWidth
		}
		return width
	})
}

func (s *TerminalStatus) StartSpinner(message string) {
	s.StopSpinner()

	if !s.isTTY {
		_, _ = fmt.Fprintln(s.stdout, message)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ctx, cancel := context.WithCancel(context.Background())
	exited := make(chan struct{})
	s.stopLoop = cancel
	s.loopExited = exited

	spinnerView := &spinnerView{frames: s.spinner.Frames, message: message, stdout: s.stdout}
	go func() {
		defer close(exited)
		RunTTYRenderLoop(ctx, spinnerView, s.stdout, s.width, s.spinner.FPS)
	}()
}

// StopSpinner erases the spinner and waits for its render loop to exit. Safe to call when no spinner runs.
func (s *TerminalStatus) StopSpinner() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopLoop == nil {
		return
	}
	s.stopLoop()
	<-s.loopExited
	s.stopLoop = nil
	s.loopExited = nil
}

func (s *TerminalStatus) Write(message string) {
	s.StopSpinner()
	_, _ = fmt.Fprintln(s.stdout, message)
}

func (s *TerminalStatus) WriteError(message string) {
	s.StopSpinner()
	_, _ = fmt.Fprintln(s.stderr, message)
}

type spinnerView struct {
	frames  []string
	frame   int
	message string
	stdout  io.Writer
}

func (v *spinnerView) Render(width int) int {
	frame := v.frames[v.frame%len(v.frames)]
	v.frame++
	message := TrimTextToWidth(ext.Max(width-len([]rune(frame))-1, 1), strings.SplitN(v.message, "\n", 2)[0])
	_, err := fmt.Fprintf(v.stdout, "%s %s\n", color.FgCyan("%s", frame), message)
	if err != nil {
		return 0
	}
	return 1
}
