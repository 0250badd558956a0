package cloneCommand

import (
	"errors"
	"fmt"
	"strings"

	"gpc/internal/graphcool"
	"gpc/internal/projectFile"
)

type (
	SourceNotFoundError = graphcool.SourceNotFoundError
	CloneOperationError = graphcool.CloneOperationError
	FieldError          = graphcool.FieldError
	WriteError          = projectFile.WriteError
)

// ErrReported marks failures whose message was already written to the status output.
var ErrReported = errors.New("error reported")

var (
	ErrMissingSourceProjectID = errors.New("source project id is required")
	ErrInvalidProjectFile     = errors.New("invalid project file path")
	ErrOutputCollision        = errors.New("output path is the source project file")
	ErrNoProjectFileOrID      = errors.New("no project id and no project file")
	ErrMultipleProjectFiles   = errors.New("multiple project files")
	ErrNoProjectID            = errors.New("project file has no project id")
	ErrNotAuthenticated       = errors.New("no API token")
)

// UsageError ties a usage problem to the path or setting it concerns.
type UsageError struct {
	Kind    error
	Subject string
	Err     error
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Subject, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Subject)
}

func (e *UsageError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

type multipleProjectFilesError struct {
	files []string
}

func (e *multipleProjectFilesError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMultipleProjectFiles, strings.Join(e.files, ", "))
}

func (e *multipleProjectFilesError) Unwrap() error {
	return ErrMultipleProjectFiles
}
