package cloneCommand

import (
	"context"
	"errors"
	"fmt"

	"gpc/internal/cloneCommand/terminalView"
	"gpc/internal/color"
	"gpc/internal/graphcool"
	. "gpc/internal/log"
	"gpc/internal/projectFile"
)

const clonedNamePrefix = "Clone of "

type NameResolver interface {
	FetchName(ctx context.Context, projectID string) (*graphcool.ProjectSummary, error)
}

type CloneClient interface {
	Clone(ctx context.Context, sourceProjectID, name string, includeMutationCallbacks, includeData bool) (*projectFile.Descriptor, error)
}

type DescriptorWriter interface {
	Write(descriptor *projectFile.Descriptor, path string) error
}

// StatusSink is the user facing side channel. It carries no result data.
type StatusSink interface {
	StartSpinner(message string)
	StopSpinner()
	Write(message string)
	WriteError(message string)
}

type WorkflowResult struct {
	ClonedName string
	OutputPath string
	ProjectID  string
}

type State int

const (
	Idle State = iota
	ResolvingName
	Cloning
	WritingDescriptor
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case ResolvingName:
		return "ResolvingName"
	case Cloning:
		return "Cloning"
	case WritingDescriptor:
		return "WritingDescriptor"
	case Done:
		return "Done"
	case Failed:
		return "Failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Workflow clones one source project and writes the clone's project file. A Workflow runs once;
// construct a new one per clone.
type Workflow struct {
	resolver NameResolver
	client   CloneClient
	writer   DescriptorWriter
	status   StatusSink
	state    State
}

func NewWorkflow(resolver NameResolver, client CloneClient, writer DescriptorWriter, status StatusSink) *Workflow {
	return &Workflow{
		resolver: resolver,
		client:   client,
		writer:   writer,
		status:   status,
		state:    Idle,
	}
}

func (w *Workflow) State() State {
	return w.state
}

// Execute runs name resolution, the remote clone and the project file write in order, stopping at the first failure.
// Known failures are written to the status sink and returned wrapped in ErrReported. Anything else is returned unchanged.
func (w *Workflow) Execute(ctx context.Context, request CloneRequest) (*WorkflowResult, error) {
	w.status.StartSpinner(terminalView.CloningProjectMessage)

	w.transition(ResolvingName)
	clonedName, err := w.resolveName(ctx, request)
	if err != nil {
		return nil, w.fail(err, nil)
	}

	w.transition(Cloning)
	descriptor, err := w.client.Clone(ctx, request.SourceProjectID(), clonedName, request.IncludeMutationCallbacks(), request.IncludeData())
	if err != nil {
		return nil, w.fail(err, nil)
	}

	outputPath := ResolveOutputPath(request.OutputPath(), request.DescriptorPath())

	w.transition(WritingDescriptor)
	if err := w.writer.Write(descriptor, outputPath); err != nil {
		return nil, w.fail(err, &WorkflowResult{ClonedName: clonedName, OutputPath: outputPath, ProjectID: descriptor.ProjectID})
	}

	w.status.StopSpinner()
	w.transition(Done)
	result := &WorkflowResult{
		ClonedName: clonedName,
		OutputPath: outputPath,
		ProjectID:  descriptor.ProjectID,
	}
	w.status.Write(terminalView.ClonedProjectMessage(result.ClonedName, result.OutputPath, result.ProjectID))
	return result, nil
}

func (w *Workflow) resolveName(ctx context.Context, request CloneRequest) (string, error) {
	if name, ok := request.ExplicitName(); ok {
		return name, nil
	}
	summary, err := w.resolver.FetchName(ctx, request.SourceProjectID())
	if err != nil {
		return "", err
	}
	return clonedNamePrefix + summary.Name, nil
}

// fail stops the spinner, then reports classified errors. cloned is set once the remote clone exists.
func (w *Workflow) fail(err error, cloned *WorkflowResult) error {
	w.status.StopSpinner()
	failedIn := w.state
	w.transition(Failed)
	Log.Errorf("Clone failed while %s: %v", failedIn, err)

	var cloneErr *CloneOperationError
	var notFound *SourceNotFoundError
	var writeErr *WriteError
	switch {
	case errors.As(err, &cloneErr):
		w.status.WriteError(terminalView.CloneOperationErrorReport(cloneErr.Fields))
	case errors.As(err, &notFound):
		w.status.WriteError(terminalView.SourceNotFoundMessage(notFound.ProjectID, notFound.Reason))
	case errors.As(err, &writeErr) && cloned != nil:
		w.status.WriteError(terminalView.WriteFailedMessage(cloned.ClonedName, cloned.ProjectID, cloned.OutputPath, writeErr.Err))
	default:
		return err
	}
	return fmt.Errorf("%w: %w", ErrReported, err)
}

func (w *Workflow) transition(next State) {
	Log.Debugf("Clone workflow %s -> %s", color.FgMagenta("%s", w.state), color.FgMagenta("%s", next))
	w.state = next
}
