package cloneCommand

import (
	"context"
	"errors"
	"fmt"

	"gpc/internal/appConfig"
	"gpc/internal/cloneCommand/terminalView"
	"gpc/internal/color"
	"gpc/internal/graphcool"
	. "gpc/internal/log"
	"gpc/internal/projectFile"
)

// ExecuteCloneCommand resolves the source project, builds the request and runs the clone workflow against
// the configured API. workDir is searched for a project file when no source project id is given.
func ExecuteCloneCommand(ctx context.Context, config *appConfig.AppConfig, opts CloneOptions, status StatusSink, workDir string) (*WorkflowResult, error) {
	Log.Debugf("Clone with options: %+v", opts)

	opts, err := resolveSourceProject(opts, config, workDir)
	if err != nil {
		return nil, report(status, err)
	}

	request, err := NewCloneRequest(opts)
	if err != nil {
		return nil, report(status, err)
	}
	Log.Debugf("Project file: %s, output path: %s", request.DescriptorPath(), ResolveOutputPath(request.OutputPath(), request.DescriptorPath()))

	token := config.RetrieveTokenFromEnv()
	if token == "" {
		return nil, report(status, &UsageError{Kind: ErrNotAuthenticated, Subject: config.EnvTokenVariableName})
	}

	client := graphcool.NewAPIClient(token, config.Endpoint, config.RequestTimeout)
	workflow := NewWorkflow(client, client, projectFile.NewWriter(), status)
	return workflow.Execute(ctx, request)
}

// resolveSourceProject fills in the source project id from a project file when none was given.
func resolveSourceProject(opts CloneOptions, config *appConfig.AppConfig, workDir string) (CloneOptions, error) {
	if opts.ProjectFile != "" && !projectFile.IsValidProjectFilePath(opts.ProjectFile) {
		return opts, &UsageError{Kind: ErrInvalidProjectFile, Subject: opts.ProjectFile}
	}
	if opts.SourceProjectID != "" {
		if opts.ProjectFile == "" {
			opts.ProjectFile = config.DefaultProjectFileName
		}
		return opts, nil
	}

	if opts.ProjectFile == "" {
		projectFiles, err := projectFile.FindProjectFiles(workDir)
		if err != nil {
			return opts, err
		}
		switch len(projectFiles) {
		case 0:
			return opts, ErrNoProjectFileOrID
		case 1:
			opts.ProjectFile = projectFiles[0]
		default:
			return opts, &multipleProjectFilesError{files: projectFiles}
		}
	}

	projectID, err := projectFile.ReadProjectID(opts.ProjectFile)
	if err != nil {
		return opts, &UsageError{Kind: ErrNoProjectID, Subject: opts.ProjectFile, Err: err}
	}
	Log.Infof("Using source project %s from %s", color.FgMagenta("%s", projectID), color.FgMagenta("%s", opts.ProjectFile))
	opts.SourceProjectID = projectID
	return opts, nil
}

// report writes the message for errors raised before the workflow starts.
func report(status StatusSink, err error) error {
	var multiple *multipleProjectFilesError
	var usage *UsageError
	var message string
	switch {
	case errors.As(err, &multiple):
		message = terminalView.MultipleProjectFilesMessage(multiple.files)
	case errors.Is(err, ErrNoProjectFileOrID), errors.Is(err, ErrMissingSourceProjectID):
		message = terminalView.NoProjectFileOrIDMessage()
	case errors.As(err, &usage):
		message = usageMessage(usage)
	}
	if message == "" {
		return err
	}
	Log.Errorf("Clone not started: %v", err)
	status.WriteError(message)
	return fmt.Errorf("%w: %w", ErrReported, err)
}

func usageMessage(usage *UsageError) string {
	switch usage.Kind {
	case ErrInvalidProjectFile:
		return terminalView.InvalidProjectFilePathMessage(usage.Subject)
	case ErrNoProjectID:
		return terminalView.NoProjectIDMessage(usage.Subject)
	case ErrOutputCollision:
		return terminalView.OutputCollisionMessage(usage.Subject)
	case ErrNotAuthenticated:
		return terminalView.NotAuthenticatedMessage(usage.Subject)
	}
	return ""
}
