package cloneCommand

import (
	"github.com/samber/lo"

	"gpc/internal/ext"
	"gpc/internal/projectFile"
)

// CloneOptions is what a caller may ask for. Unset booleans mean true: mutation callbacks and data
// are copied unless explicitly suppressed.
type CloneOptions struct {
	SourceProjectID          string
	Name                     string
	IncludeMutationCallbacks *bool
	IncludeData              *bool
	ProjectFile              string
	OutputPath               string
}

const (
	DefaultIncludeMutationCallbacks = true
	DefaultIncludeData              = true
)

// CloneRequest is a validated, fully defaulted clone request.
type CloneRequest struct {
	sourceProjectID          string
	explicitName             string
	includeMutationCallbacks bool
	includeData              bool
	descriptorPath           string
	outputPath               string
}

func NewCloneRequest(opts CloneOptions) (CloneRequest, error) {
	if opts.SourceProjectID == "" {
		return CloneRequest{}, ErrMissingSourceProjectID
	}
	descriptorPath := ext.DefaultValue(opts.ProjectFile, projectFile.DefaultFileName)
	if !projectFile.IsValidProjectFilePath(descriptorPath) {
		return CloneRequest{}, &UsageError{Kind: ErrInvalidProjectFile, Subject: descriptorPath}
	}
	if ext.SamePath(ResolveOutputPath(opts.OutputPath, descriptorPath), descriptorPath) {
		return CloneRequest{}, &UsageError{Kind: ErrOutputCollision, Subject: opts.OutputPath}
	}

	return CloneRequest{
		sourceProjectID:          opts.SourceProjectID,
		explicitName:             opts.Name,
		includeMutationCallbacks: lo.FromPtrOr(opts.IncludeMutationCallbacks, DefaultIncludeMutationCallbacks),
		includeData:              lo.FromPtrOr(opts.IncludeData, DefaultIncludeData),
		descriptorPath:           descriptorPath,
		outputPath:               opts.OutputPath,
	}, nil
}

func (r CloneRequest) SourceProjectID() string {
	return r.sourceProjectID
}

// ExplicitName returns the name the caller asked for, if any.
func (r CloneRequest) ExplicitName() (string, bool) {
	return r.explicitName, r.explicitName != ""
}

func (r CloneRequest) IncludeMutationCallbacks() bool {
	return r.includeMutationCallbacks
}

func (r CloneRequest) IncludeData() bool {
	return r.includeData
}

func (r CloneRequest) DescriptorPath() string {
	return r.descriptorPath
}

func (r CloneRequest) OutputPath() string {
	return r.outputPath
}

// ResolveOutputPath prefers the explicit output path and otherwise derives one from the source project file.
func ResolveOutputPath(outputPath, descriptorPath string) string {
	if outputPath != "" {
		return outputPath
	}
	return projectFile.CloneFileName(ext.DefaultValue(descriptorPath, projectFile.DefaultFileName))
}
