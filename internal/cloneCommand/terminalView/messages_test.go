package terminalView

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"gpc/internal/graphcool"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestClonedProjectMessage(t *testing.T) {
	got := ClonedProjectMessage("Clone of Blog", "/tmp/project-clone.graphcool", "c1")

	expected := "✔ Cloned your project as Clone of Blog (ID: c1)\n  The project file was written to /tmp/project-clone.graphcool"
	if got != expected {
		t.Errorf("\nexpected %q\n     got %q", expected, got)
	}
}

func TestCloneOperationErrorReport_OneEntryPerField(t *testing.T) {
	got := CloneOperationErrorReport([]graphcool.FieldError{
		{Field: "name", Message: "duplicate", RequestID: "r1"},
		{Field: "projectId", Message: "invalid project id"},
	})

	expected := "✖ The project could not be cloned (2 errors):\n" +
		"  - name\n" +
		"      duplicate\n" +
		"  - projectId\n" +
		"      invalid project id\n" +
		"  Request ID: r1"
	if got != expected {
		t.Errorf("\nexpected %q\n     got %q", expected, got)
	}
}

func TestCloneOperationErrorReport_WrapsLongMessages(t *testing.T) {
	long := strings.Repeat("quota ", 30)
	got := CloneOperationErrorReport([]graphcool.FieldError{{Field: "plan", Message: long}})

	for _, line := range strings.Split(got, "\n") {
		if len([]rune(line)) > reportWidth+6 {
			t.Errorf("line exceeds report width: %q", line)
		}
	}
	if !strings.HasPrefix(got, "✖ The project could not be cloned (1 error):") {
		t.Errorf("unexpected header in %q", got)
	}
}

func TestWriteFailedMessage_MentionsSuccessfulClone(t *testing.T) {
	got := WriteFailedMessage("Clone of Blog", "c1", "/readonly/clone.graphcool", errors.New("permission denied"))

	for _, part := range []string{"was cloned as Clone of Blog", "c1", "/readonly/clone.graphcool", "permission denied"} {
		if !strings.Contains(got, part) {
			t.Errorf("expected %q in %q", part, got)
		}
	}
}

func TestUnexpectedErrorMessage(t *testing.T) {
	got := UnexpectedErrorMessage(errors.New("connection reset"), "somePath.log")

	expected := "--- unexpected error ---\nconnection reset\nSee log file:\nsomePath.log"
	if got != expected {
		t.Errorf("\nexpected %q\n     got %q", expected, got)
	}
}

func TestMultipleProjectFilesMessage(t *testing.T) {
	got := MultipleProjectFilesMessage([]string{"a.graphcool", "b.graphcool"})

	if !strings.HasSuffix(got, ":\n  a.graphcool\n  b.graphcool") {
		t.Errorf("unexpected listing in %q", got)
	}
}

func TestSourceNotFoundMessage_ShowsReason(t *testing.T) {
	got := SourceNotFoundMessage("p1", "No project with id 'p1'")

	expected := "✖ The project p1 could not be found. Check the id, or that you have access to it.\n      No project with id 'p1'"
	if got != expected {
		t.Errorf("\nexpected %q\n     got %q", expected, got)
	}
	if strings.Contains(SourceNotFoundMessage("p1", ""), "\n") {
		t.Errorf("expected a single line without a reason")
	}
}
