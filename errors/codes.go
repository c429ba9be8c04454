package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Input errors.

	// CodeInvalidInput indicates an argument or option value is invalid.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidRepositoryURL indicates a repository URL could not be parsed into owner and name.
	CodeInvalidRepositoryURL ErrorCode = "INVALID_REPOSITORY_URL"

	// CodeIssueNotBound indicates an issue operation was called before an issue number was set.
	CodeIssueNotBound ErrorCode = "ISSUE_NOT_BOUND"

	// Local file errors.

	// CodeFileNotFound indicates a local file does not exist.
	CodeFileNotFound ErrorCode = "FILE_NOT_FOUND"

	// CodeFileRead indicates a local file exists but could not be read.
	CodeFileRead ErrorCode = "FILE_READ_FAILED"

	// Remote API errors.

	// CodeUnexpectedResponse indicates the API answered with a status code
	// outside the accepted success set.
	CodeUnexpectedResponse ErrorCode = "UNEXPECTED_RESPONSE"

	// CodeMalformedResponse indicates a successful response lacked an expected field.
	CodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"

	// CodeBranchBootstrapFailed indicates no source commit could be found to create a branch from.
	CodeBranchBootstrapFailed ErrorCode = "BRANCH_BOOTSTRAP_FAILED"

	// CodeUnauthorized indicates the backend has no valid credentials.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Infrastructure errors.

	// CodeNetwork indicates the request never produced a response.
	CodeNetwork ErrorCode = "NETWORK_ERROR"

	// CodeExecutionFailed indicates an external command could not be run.
	CodeExecutionFailed ErrorCode = "EXECUTION_FAILED"

	// CodeInternal indicates an internal error, such as an unencodable payload.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)
