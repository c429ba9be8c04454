package githubapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rabierabit/githubapi/errors"
)

// Error codes returned by this package.
// These are aliases of the errors package codes for readability at call sites.
const (
	// ErrCodeInvalidRepositoryURL indicates the repository URL has no owner/name path.
	ErrCodeInvalidRepositoryURL = errors.CodeInvalidRepositoryURL

	// ErrCodeFileNotFound indicates the local file to upload does not exist.
	ErrCodeFileNotFound = errors.CodeFileNotFound

	// ErrCodeFileRead indicates the local file to upload could not be read.
	ErrCodeFileRead = errors.CodeFileRead

	// ErrCodeIssueNotBound indicates an issue operation ran before an issue number was set.
	ErrCodeIssueNotBound = errors.CodeIssueNotBound

	// ErrCodeUnexpectedResponse indicates a status code outside the accepted success set.
	ErrCodeUnexpectedResponse = errors.CodeUnexpectedResponse

	// ErrCodeMalformedResponse indicates a successful response lacked an expected field.
	ErrCodeMalformedResponse = errors.CodeMalformedResponse

	// ErrCodeBranchBootstrapFailed indicates no source commit could be found for a new branch.
	ErrCodeBranchBootstrapFailed = errors.CodeBranchBootstrapFailed

	// ErrCodeInvalidInput indicates an invalid argument or option.
	ErrCodeInvalidInput = errors.CodeInvalidInput

	// ErrCodeNetwork indicates the transport received no response.
	ErrCodeNetwork = errors.CodeNetwork
)

// unknownErrorMessage is used when an error response carries no "message" field.
const unknownErrorMessage = "Unknown error"

// ResponseError is the cause attached to every ErrCodeUnexpectedResponse error.
// Message is the API's "message" field, or "Unknown error" if absent.
type ResponseError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status code of an unexpected API response
// anywhere in err's chain.
func StatusCode(err error) (int, bool) {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode, true
	}
	return 0, false
}

// IsInvalidArgument reports whether err was caused by the caller's arguments
// rather than by the remote API: an invalid repository URL, an invalid option,
// or an issue operation on an unbound IssueService.
func IsInvalidArgument(err error) bool {
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput, errors.CodeInvalidRepositoryURL, errors.CodeIssueNotBound:
		return true
	default:
		return false
	}
}

// newUnexpectedResponseError builds the error for a status code outside the
// accepted success set. 429 and 5xx answers are classified as retryable.
func newUnexpectedResponseError(resp *Response, message string) error {
	cause := &ResponseError{
		StatusCode: resp.StatusCode,
		Message:    responseMessage(resp.Body),
	}

	err := errors.Wrap(cause, errors.CodeUnexpectedResponse, message)
	err = errors.WithContext(err, "status_code", resp.StatusCode)
	if isRetryableStatus(resp.StatusCode) {
		err = errors.WithClassification(err, errors.ClassificationRetryable)
	}
	return err
}

// responseMessage extracts the "message" field of an API error body.
func responseMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Message == "" {
		return unknownErrorMessage
	}
	return payload.Message
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}

// newMalformedResponseError creates an error for a successful response that
// lacks an expected field.
func newMalformedResponseError(field string, statusCode int) error {
	err := errors.New(errors.CodeMalformedResponse, fmt.Sprintf("response is missing %s", field))
	err = errors.WithContext(err, "field", field)
	return errors.WithContext(err, "status_code", statusCode)
}

// newInvalidInputError creates an invalid input error with context.
func newInvalidInputError(field, reason string) error {
	err := errors.New(
		errors.CodeInvalidInput,
		fmt.Sprintf("invalid %s: %s", field, reason),
	)
	err = errors.WithContext(err, "field", field)
	return errors.WithContext(err, "reason", reason)
}

// decodeResponse decodes a successful response body into v.
func decodeResponse(resp *Response, v interface{}, what string) error {
	if err := json.Unmarshal(resp.Body, v); err != nil {
		wrapped := errors.Wrap(err, errors.CodeMalformedResponse, fmt.Sprintf("failed to decode %s", what))
		return errors.WithContext(wrapped, "status_code", resp.StatusCode)
	}
	return nil
}
