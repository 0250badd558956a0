package terminalView

import (
	"fmt"
	"strings"

	"gpc/internal/color"
	"gpc/internal/ext"
	"gpc/internal/graphcool"
	"gpc/internal/view"
)

const CloningProjectMessage = "Cloning project..."

// reportWidth is the width error messages are wrapped to, independent of the terminal.
const reportWidth = 72

const (
	tick  = "✔"
	cross = "✖"
)

func ClonedProjectMessage(clonedName, outputPath, projectID string) string {
	return fmt.Sprintf("%s Cloned your project as %s (ID: %s)\n  The project file was written to %s",
		color.FgGreen("%s", tick),
		color.Bold("%s", clonedName),
		color.FgCyan("%s", projectID),
		color.FgCyan("%s", ext.ReplaceHomeDirWithTilde(outputPath)))
}

// CloneOperationErrorReport renders one entry per rejected field, messages wrapped and indented under the field.
func CloneOperationErrorReport(fields []graphcool.FieldError) string {
	var out strings.Builder
	out.WriteString(fmt.Sprintf("%s The project could not be cloned (%s):\n",
		color.FgRed("%s", cross), pluralize(len(fields), "error")))
	var requestIDs []string
	for _, field := range fields {
		out.WriteString(fmt.Sprintf("  %s %s\n", color.FgRed("-"), color.Bold("%s", field.Field)))
		out.WriteString(indent(view.WordWrap(field.Message, reportWidth), "      "))
		out.WriteString("\n")
		if field.RequestID != "" {
			requestIDs = append(requestIDs, field.RequestID)
		}
	}
	if len(requestIDs) > 0 {
		out.WriteString(fmt.Sprintf("  Request ID: %s\n", strings.Join(requestIDs, ", ")))
	}
	return strings.TrimSuffix(out.String(), "\n")
}

func SourceNotFoundMessage(projectID, reason string) string {
	message := fmt.Sprintf("%s The project %s could not be found. Check the id, or that you have access to it.",
		color.FgRed("%s", cross), color.Bold("%s", projectID))
	if reason == "" {
		return message
	}
	return message + "\n" + indent(view.WordWrap(reason, reportWidth), "      ")
}

// WriteFailedMessage tells the user the remote clone exists even though its project file is missing.
func WriteFailedMessage(clonedName, projectID, outputPath string, cause error) string {
	return fmt.Sprintf("%s Your project was cloned as %s (ID: %s), but the project file could not be written to %s:\n      %v",
		color.FgYellow("%s", cross),
		color.Bold("%s", clonedName),
		color.FgCyan("%s", projectID),
		color.FgCyan("%s", ext.ReplaceHomeDirWithTilde(outputPath)),
		cause)
}

func NoProjectFileOrIDMessage() string {
	return fmt.Sprintf("%s No project id given and no project file found. Use --source-project-id or --project-file.",
		color.FgRed("%s", cross))
}

func NoProjectIDMessage(projectFilePath string) string {
	return fmt.Sprintf("%s The project file %s does not contain a project id.",
		color.FgRed("%s", cross), color.FgCyan("%s", projectFilePath))
}

func InvalidProjectFilePathMessage(projectFilePath string) string {
	return fmt.Sprintf("%s %s is not a valid project file. Project files end in .graphcool",
		color.FgRed("%s", cross), color.FgCyan("%s", projectFilePath))
}

func MultipleProjectFilesMessage(projectFiles []string) string {
	return fmt.Sprintf("%s Found more than one project file, choose one with --project-file:\n%s",
		color.FgRed("%s", cross), indent(strings.Join(projectFiles, "\n"), "  "))
}

func OutputCollisionMessage(outputPath string) string {
	return fmt.Sprintf("%s The output path %s is the source project file. Choose another --output-path.",
		color.FgRed("%s", cross), color.FgCyan("%s", outputPath))
}

func NotAuthenticatedMessage(tokenEnvVar string) string {
	return fmt.Sprintf("%s No API token found. Set %s in the environment or in a .env file.",
		color.FgRed("%s", cross), color.Bold("%s", tokenEnvVar))
}

func ConfigLoadFailedMessage(err error) string {
	return fmt.Sprintf("%s %v", color.FgRed("%s", cross), err)
}

// UnexpectedErrorMessage is shown for failures that have no dedicated message.
func UnexpectedErrorMessage(err error, logFilePath string) string {
	return fmt.Sprintf("--- %s ---\n%v\nSee log file:\n%s",
		color.FgRed("unexpected error"),
		err,
		color.FgMagenta("%s", ext.ReplaceHomeDirWithTilde(logFilePath)))
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func pluralize(count int, noun string) string {
	if count == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}
