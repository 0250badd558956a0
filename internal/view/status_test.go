package view

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// syncBuffer lets the render loop write while the test reads.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func fixedWidth(width int) func() int {
	return func() int { return width }
}

func TestTerminalStatus_NonTTYPrintsSpinnerMessageOnce(t *testing.T) {
	defer goleak.VerifyNone(t)
	var stdout, stderr bytes.Buffer
	status := NewTerminalStatus(&stdout, &stderr, false, fixedWidth(80))

	status.StartSpinner("Cloning project...")
	status.StopSpinner()
	status.Write("done")
	status.WriteError("failed")

	assert.Equal(t, "Cloning project...\ndone\n", stdout.String())
	assert.Equal(t, "failed\n", stderr.String())
}

func TestTerminalStatus_TTYAnimatesAndErasesSpinner(t *testing.T) {
	defer goleak.VerifyNone(t)
	var stdout syncBuffer
	var stderr bytes.Buffer
	status := NewTerminalStatus(&stdout, &stderr, true, fixedWidth(40))

	status.StartSpinner("Cloning project...")
	time.Sleep(3 * spinner.MiniDot.FPS)
	status.StopSpinner()

	out := stdout.String()
	assert.Contains(t, out, spinner.MiniDot.Frames[0])
	assert.Contains(t, out, "Cloning project...")
	assert.Contains(t, out, ansiLineOffset(1), "re-render moves the cursor back up")
	assert.True(t, strings.HasSuffix(out, ansiLineOffset(1)+ansiClearToEnd), "spinner is erased on stop")
}

func TestTerminalStatus_StopWithoutStartIsNoop(t *testing.T) {
	defer goleak.VerifyNone(t)
	var stdout, stderr bytes.Buffer
	status := NewTerminalStatus(&stdout, &stderr, true, fixedWidth(80))

	status.StopSpinner()
	status.StopSpinner()

	assert.Empty(t, stdout.String())
}

func TestTerminalStatus_WriteStopsRunningSpinner(t *testing.T) {
	defer goleak.VerifyNone(t)
	var stdout syncBuffer
	var stderr bytes.Buffer
	status := NewTerminalStatus(&stdout, &stderr, true, fixedWidth(80))

	status.StartSpinner("Cloning project...")
	status.Write("Cloned")

	assert.True(t, strings.HasSuffix(stdout.String(), ansiClearToEnd+"Cloned\n"))
}

func TestSpinnerView_RenderFitsWidthAndCyclesFrames(t *testing.T) {
	var buf bytes.Buffer
	v := &spinnerView{frames: []string{"a", "b"}, message: "Cloning project...", stdout: &buf}

	lines := v.Render(9)
	v.Render(9)
	v.Render(9)

	assert.Equal(t, 1, lines)
	rendered := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, rendered, 3)
	assert.Contains(t, rendered[0], "a Cloning")
	assert.NotContains(t, rendered[0], "project", "message is cut to the terminal width")
	assert.Contains(t, rendered[1], "b Cloning")
	assert.Contains(t, rendered[2], "a Cloning")
}
