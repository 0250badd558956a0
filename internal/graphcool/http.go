package graphcool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	. "gpc/internal/log"
)

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlResponse[T any] struct {
	Data   *T         `json:"data"`
	Errors []APIError `json:"errors"`
}

// graphqlPost sends one GraphQL document. Errors reported by the API in the response body are
// returned as apiErrors, everything that prevented a well-formed response is returned as err.
func graphqlPost[T any](ctx context.Context, api *APIClient, query string, variables map[string]any) (data *T, apiErrors []APIError, err error) {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, api.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if api.token != "" {
		req.Header.Set("Authorization", "Bearer "+api.token)
	}

	Log.Debugf("POST %s (request %s)", api.endpoint, requestID)
	resp, err := api.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("API request to %s failed: %w", api.endpoint, err)
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			Log.Errorf("Failed to close response body: %v", err)
		}
	}(resp.Body)

	var decoded graphqlResponse[T]
	decodeErr := json.NewDecoder(resp.Body).Decode(&decoded)

	if len(decoded.Errors) > 0 {
		Log.Debugf("API request %s returned %d errors", requestID, len(decoded.Errors))
		return decoded.Data, decoded.Errors, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, fmt.Errorf("API request on %s failed with status: %s", api.endpoint, resp.Status)
	}
	if decodeErr != nil {
		return nil, nil, fmt.Errorf("failed to decode response: %w", decodeErr)
	}
	return decoded.Data, nil, nil
}
