package graphcool

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// APIError is a single entry of the errors array of a GraphQL response.
type APIError struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
	Path      []any  `json:"path"`
}

// FieldError is one rejected part of a clone request.
type FieldError struct {
	Field     string
	Message   string
	Code      int
	RequestID string
}

// CloneOperationError is returned when the API rejects a clone request.
type CloneOperationError struct {
	Fields []FieldError
}

func (e *CloneOperationError) Error() string {
	parts := lo.Map(e.Fields, func(field FieldError, _ int) string {
		return fmt.Sprintf("%s: %s", field.Field, field.Message)
	})
	return "clone rejected: " + strings.Join(parts, "; ")
}

// projectNotFoundCode is the API error code for a project id that does not exist or is not visible to the token.
const projectNotFoundCode = 3002

// RequestError carries API errors that have no dedicated meaning for the caller.
type RequestError struct {
	Operation string
	Fields    []FieldError
}

func (e *RequestError) Error() string {
	parts := lo.Map(e.Fields, func(field FieldError, _ int) string {
		return fmt.Sprintf("%s: %s", field.Field, field.Message)
	})
	return fmt.Sprintf("%s failed: %s", e.Operation, strings.Join(parts, "; "))
}

// SourceNotFoundError is returned when the source project cannot be read.
type SourceNotFoundError struct {
	ProjectID string
	Reason    string
}

func (e *SourceNotFoundError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("source project %s not found", e.ProjectID)
	}
	return fmt.Sprintf("source project %s not found: %s", e.ProjectID, e.Reason)
}

func toFieldError(apiError APIError, _ int) FieldError {
	return FieldError{
		Field:     fieldName(apiError),
		Message:   apiError.Message,
		Code:      apiError.Code,
		RequestID: apiError.RequestID,
	}
}

func fieldName(apiError APIError) string {
	if len(apiError.Path) > 0 {
		return strings.Join(lo.Map(apiError.Path, func(element any, _ int) string {
			return fmt.Sprint(element)
		}), ".")
	}
	if apiError.Code != 0 {
		return fmt.Sprintf("%d", apiError.Code)
	}
	return "request"
}

func newCloneOperationError(apiErrors []APIError) *CloneOperationError {
	return &CloneOperationError{Fields: lo.Map(apiErrors, toFieldError)}
}
