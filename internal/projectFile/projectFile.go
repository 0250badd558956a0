package projectFile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"gpc/internal/color"
	logger "gpc/internal/log"
)

const Extension = ".graphcool"

const DefaultFileName = "project" + Extension

// CloneSuffix is inserted before the extension when deriving a clone's descriptor name.
const CloneSuffix = "-clone"

var projectIDHeader = regexp.MustCompile(`^#\s*project:\s*([A-Za-z0-9_-]+)\s*$`)

// WriteError means the descriptor could not be persisted locally.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write project file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Writer persists descriptors to the local file system.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Write(descriptor *Descriptor, path string) error {
	return Write(descriptor, path)
}

// Format renders a descriptor the way it is stored on disk: a comment header with the project's identity, then the schema.
// Name and alias lines are left out when empty.
func Format(descriptor *Descriptor) string {
	var header strings.Builder
	header.WriteString(fmt.Sprintf("# project: %s\n", descriptor.ProjectID))
	if descriptor.Name != "" {
		header.WriteString(fmt.Sprintf("# name: %s\n", descriptor.Name))
	}
	if descriptor.Alias != "" {
		header.WriteString(fmt.Sprintf("# alias: %s\n", descriptor.Alias))
	}
	header.WriteString(fmt.Sprintf("# version: %d\n", descriptor.Version))
	return fmt.Sprintf("%s\n%s", header.String(), descriptor.Schema)
}

func Write(descriptor *Descriptor, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, []byte(Format(descriptor)), 0644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	logger.Log.Debugf("Project file for %s written to %s", color.FgCyan("%s", descriptor.ProjectID), color.FgCyan("%s", path))
	return nil
}

// ReadProjectID returns the project id from the header of a descriptor file.
func ReadProjectID(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not open project file: %w", err)
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			logger.Log.Errorf("failed to close project file: %v", err)
		}
	}(file)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			break
		}
		if match := projectIDHeader.FindStringSubmatch(line); match != nil {
			return match[1], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("could not read project file %s: %w", path, err)
	}
	return "", fmt.Errorf("no project id found in %s", path)
}

func IsValidProjectFilePath(path string) bool {
	return strings.HasSuffix(path, Extension) && len(filepath.Base(path)) > len(Extension)
}

// CloneFileName derives the descriptor name for a clone: project.graphcool becomes project-clone.graphcool.
func CloneFileName(projectFilePath string) string {
	extension := filepath.Ext(projectFilePath)
	return strings.TrimSuffix(projectFilePath, extension) + CloneSuffix + extension
}

// FindProjectFiles lists the descriptor files directly inside dir.
func FindProjectFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not list %s: %w", dir, err)
	}
	files := lo.Filter(entries, func(entry os.DirEntry, _ int) bool {
		return !entry.IsDir() && IsValidProjectFilePath(entry.Name())
	})
	return lo.Map(files, func(entry os.DirEntry, _ int) string {
		return filepath.Join(dir, entry.Name())
	}), nil
}
