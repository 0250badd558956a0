package graphcool

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"

	"gpc/internal/color"
	. "gpc/internal/log"
	"gpc/internal/projectFile"
)

/* APIClient manages access to the GraphQL system API.
It is at the boundary to external data: API error shapes are turned into typed errors here.
All methods are synchronous.
*/

type APIClient struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

func NewAPIClient(token, endpoint string, timeout time.Duration) *APIClient {
	return &APIClient{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ProjectSummary is the part of a remote project read before cloning it.
type ProjectSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Alias   string `json:"alias"`
	Version int    `json:"version"`
}

const projectInfoQuery = `query ($projectId: ID!) {
  viewer {
    project(id: $projectId) {
      id
      name
      alias
      version
    }
  }
}`

const cloneProjectMutation = `mutation ($projectId: String!, $name: String!, $includeMutationCallbacks: Boolean!, $includeData: Boolean!) {
  cloneProject(input: {
    projectId: $projectId,
    name: $name,
    includeMutationCallbacks: $includeMutationCallbacks,
    includeData: $includeData,
    clientMutationId: "gpc"
  }) {
    clonedProject {
      id
      name
      alias
      version
      schema
    }
  }
}`

type projectInfoData struct {
	Viewer struct {
		Project *ProjectSummary `json:"project"`
	} `json:"viewer"`
}

type cloneProjectData struct {
	CloneProject *struct {
		ClonedProject *projectFile.Descriptor `json:"clonedProject"`
	} `json:"cloneProject"`
}

// FetchName reads the source project. A missing project is a *SourceNotFoundError, other API errors a *RequestError.
func (api *APIClient) FetchName(ctx context.Context, projectID string) (*ProjectSummary, error) {
	data, apiErrors, err := graphqlPost[projectInfoData](ctx, api, projectInfoQuery, map[string]any{
		"projectId": projectID,
	})
	if err != nil {
		return nil, err
	}
	if len(apiErrors) > 0 {
		notFound := lo.Filter(apiErrors, func(apiError APIError, _ int) bool { return apiError.Code == projectNotFoundCode })
		if len(notFound) == 0 {
			return nil, &RequestError{Operation: "project info query", Fields: lo.Map(apiErrors, toFieldError)}
		}
		reasons := lo.Map(notFound, func(apiError APIError, _ int) string { return apiError.Message })
		return nil, &SourceNotFoundError{ProjectID: projectID, Reason: strings.Join(reasons, "; ")}
	}
	if data == nil || data.Viewer.Project == nil {
		return nil, &SourceNotFoundError{ProjectID: projectID}
	}
	Log.Debugf("Source project %s is named %s", color.FgCyan("%s", projectID), color.FgCyan("%s", data.Viewer.Project.Name))
	return data.Viewer.Project, nil
}

// Clone asks the API to copy a project. Rejections come back as *CloneOperationError.
func (api *APIClient) Clone(ctx context.Context, sourceProjectID, name string, includeMutationCallbacks, includeData bool) (*projectFile.Descriptor, error) {
	data, apiErrors, err := graphqlPost[cloneProjectData](ctx, api, cloneProjectMutation, map[string]any{
		"projectId":                sourceProjectID,
		"name":                     name,
		"includeMutationCallbacks": includeMutationCallbacks,
		"includeData":              includeData,
	})
	if err != nil {
		return nil, err
	}
	if len(apiErrors) > 0 {
		return nil, newCloneOperationError(apiErrors)
	}
	if data == nil || data.CloneProject == nil || data.CloneProject.ClonedProject == nil {
		return nil, fmt.Errorf("clone of %s returned no project", sourceProjectID)
	}
	Log.Infof("Cloned %s into %s", color.FgMagenta("%s", sourceProjectID), color.FgMagenta("%s", data.CloneProject.ClonedProject.ProjectID))
	return data.CloneProject.ClonedProject, nil
}
