package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a missing or malformed user input.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: invalid %s: %s", e.Field, e.Value)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, value string) error {
	return &ValidationError{
		Field: field,
		Value: value,
	}
}

// APIError represents a non-2xx response from the GitHub API.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("GitHub API error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("GitHub API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new APIError with the given status code and message
func NewAPIError(statusCode int, message string, err error) error {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// EmptyResultError reports a valid response that contained no usable
// rows. It is informational; callers surface it as a notice, not a
// failure.
type EmptyResultError struct {
	Owner string
	Repo  string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no commit data returned for %s/%s", e.Owner, e.Repo)
}

// NewEmptyResultError creates a new EmptyResultError
func NewEmptyResultError(owner, repo string) error {
	return &EmptyResultError{
		Owner: owner,
		Repo:  repo,
	}
}

// UnexpectedError represents a transport or decoding failure.
type UnexpectedError struct {
	Message string
	Err     error
}

func (e *UnexpectedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("unexpected error: %s", e.Message)
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

// NewUnexpectedError creates a new UnexpectedError
func NewUnexpectedError(message string, err error) error {
	return &UnexpectedError{
		Message: message,
		Err:     err,
	}
}

// IsValidation checks if the error is a ValidationError
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsAPIError checks if the error is an APIError
func IsAPIError(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}

// AsAPIError returns the APIError in err's chain, if any.
func AsAPIError(err error) (*APIError, bool) {
	var e *APIError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsEmptyResult checks if the error is an EmptyResultError
func IsEmptyResult(err error) bool {
	var e *EmptyResultError
	return errors.As(err, &e)
}

// IsUnexpected checks if the error is an UnexpectedError
func IsUnexpected(err error) bool {
	var e *UnexpectedError
	return errors.As(err, &e)
}

// UserMessage converts an error into the text shown on the dashboard.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return "Please enter both owner and repo."
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("GitHub API error (status %d). Check that the repository exists and is public.", apiErr.StatusCode)
	}
	var emptyErr *EmptyResultError
	if errors.As(err, &emptyErr) {
		return "No commit data returned (empty result)."
	}
	var unexpectedErr *UnexpectedError
	if errors.As(err, &unexpectedErr) {
		if unexpectedErr.Err != nil {
			return fmt.Sprintf("Unexpected error: %v", unexpectedErr.Err)
		}
		return fmt.Sprintf("Unexpected error: %s", unexpectedErr.Message)
	}
	return fmt.Sprintf("Unexpected error: %v", err)
}
