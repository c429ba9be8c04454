// Package errors provides the structured error values returned by githubapi.
//
// Every error carries an ErrorCode naming the failure kind, a classification
// (retryable or permanent), an optional context map and an optional cause.
// Errors remain compatible with the standard library (errors.Is, errors.As,
// errors.Unwrap).
//
// # Creating errors
//
//	err := errors.New(errors.CodeIssueNotBound, "issue number must be set")
//
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeNetwork, "request failed")
//	}
//
// # Adding context
//
//	err = errors.WithContext(err, "branch", "images")
//
// # Inspecting errors
//
//	switch errors.GetCode(err) {
//	case errors.CodeFileNotFound:
//	    // ask the caller for another path
//	case errors.CodeUnexpectedResponse:
//	    // inspect the status code
//	}
//
// The library itself never retries. IsRetryable only reports whether repeating
// the operation could succeed (network failures, HTTP 429 and 5xx responses).
package errors
