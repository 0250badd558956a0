package cloneCommand

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gpc/internal/appConfig"
	"gpc/internal/projectFile"
)

const testTokenVar = "GPC_CLONE_COMMAND_TEST_TOKEN"

// fakeSystemAPI answers the project info query and the clone mutation.
func fakeSystemAPI(t *testing.T, cloneResponse string) (*httptest.Server, *[]map[string]any) {
	t.Helper()
	var variables []map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		variables = append(variables, body.Variables)
		if _, isClone := body.Variables["includeData"]; isClone {
			_, _ = w.Write([]byte(cloneResponse))
			return
		}
		_, _ = w.Write([]byte(`{"data":{"viewer":{"project":{"id":"p1","name":"Blog","alias":"","version":2}}}}`))
	}))
	t.Cleanup(server.Close)
	return server, &variables
}

func testConfig(t *testing.T, endpoint string) *appConfig.AppConfig {
	t.Helper()
	t.Setenv(testTokenVar, "secret")
	config := appConfig.Defaults()
	config.Endpoint = endpoint
	config.EnvTokenVariableName = testTokenVar
	config.RequestTimeout = 5 * time.Second
	return config
}

const clonedResponse = `{"data":{"cloneProject":{"clonedProject":{"id":"c1","name":"Clone of Blog","alias":"","version":1,"schema":"type Post @model {}"}}}}`

func TestExecuteCloneCommand_ReadsSourceIDFromSingleProjectFile(t *testing.T) {
	server, variables := fakeSystemAPI(t, clonedResponse)
	dir := t.TempDir()
	sourceFile := filepath.Join(dir, "blog.graphcool")
	require.NoError(t, projectFile.Write(&projectFile.Descriptor{ProjectID: "p1", Version: 2, Schema: "type Post @model {}"}, sourceFile))
	status := &MockStatus{}

	result, err := ExecuteCloneCommand(context.Background(), testConfig(t, server.URL), CloneOptions{}, status, dir)

	require.NoError(t, err)
	assert.Equal(t, "Clone of Blog", result.ClonedName)
	assert.Equal(t, filepath.Join(dir, "blog-clone.graphcool"), result.OutputPath)
	assert.Equal(t, "c1", result.ProjectID)
	require.Len(t, *variables, 2)
	assert.Equal(t, "p1", (*variables)[1]["projectId"])
	assert.Equal(t, "Clone of Blog", (*variables)[1]["name"])

	content, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, "# project: c1\n# name: Clone of Blog\n# version: 1\n\ntype Post @model {}", string(content))
}

func TestExecuteCloneCommand_NoProjectFileOrID(t *testing.T) {
	status := &MockStatus{}

	_, err := ExecuteCloneCommand(context.Background(), testConfig(t, "http://127.0.0.1:0"), CloneOptions{}, status, t.TempDir())

	assert.ErrorIs(t, err, ErrReported)
	assert.ErrorIs(t, err, ErrNoProjectFileOrID)
	require.Len(t, status.errs, 1)
	assert.Contains(t, status.errs[0], "--source-project-id")
}

func TestExecuteCloneCommand_MultipleProjectFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.graphcool"), []byte("# project: a\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.graphcool"), []byte("# project: b\n"), 0644))
	status := &MockStatus{}

	_, err := ExecuteCloneCommand(context.Background(), testConfig(t, "http://127.0.0.1:0"), CloneOptions{}, status, dir)

	assert.ErrorIs(t, err, ErrMultipleProjectFiles)
	require.Len(t, status.errs, 1)
	assert.Contains(t, status.errs[0], "a.graphcool")
	assert.Contains(t, status.errs[0], "b.graphcool")
}

func TestExecuteCloneCommand_InvalidProjectFilePath(t *testing.T) {
	status := &MockStatus{}

	_, err := ExecuteCloneCommand(context.Background(), testConfig(t, "http://127.0.0.1:0"), CloneOptions{ProjectFile: "schema.graphql"}, status, t.TempDir())

	assert.ErrorIs(t, err, ErrInvalidProjectFile)
	require.Len(t, status.errs, 1)
	assert.Contains(t, status.errs[0], "schema.graphql")
}

func TestExecuteCloneCommand_MissingToken(t *testing.T) {
	config := testConfig(t, "http://127.0.0.1:0")
	config.EnvTokenVariableName = "GPC_CLONE_COMMAND_UNSET_TOKEN"
	status := &MockStatus{}

	_, err := ExecuteCloneCommand(context.Background(), config, CloneOptions{SourceProjectID: "p1", OutputPath: filepath.Join(t.TempDir(), "c.graphcool")}, status, t.TempDir())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	require.Len(t, status.errs, 1)
	assert.Contains(t, status.errs[0], "GPC_CLONE_COMMAND_UNSET_TOKEN")
}

func TestExecuteCloneCommand_RejectedCloneWritesNothing(t *testing.T) {
	server, _ := fakeSystemAPI(t, `{"data":null,"errors":[{"code":3009,"message":"duplicate","path":["name"]}]}`)
	outputPath := filepath.Join(t.TempDir(), "copy.graphcool")
	status := &MockStatus{}

	_, err := ExecuteCloneCommand(context.Background(), testConfig(t, server.URL), CloneOptions{SourceProjectID: "p1", Name: "Blog", OutputPath: outputPath}, status, t.TempDir())

	assert.ErrorIs(t, err, ErrReported)
	_, statErr := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(statErr))
	require.Len(t, status.errs, 1)
	assert.Contains(t, status.errs[0], "duplicate")
}
