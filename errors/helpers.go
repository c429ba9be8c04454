package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from the outermost Error in err's chain.
// Returns CodeUnknown if err is nil or carries no Error.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeIssueNotBound {
//	    // bind an issue first
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var apiErr Error
	if stderrors.As(err, &apiErr) {
		return apiErr.Code()
	}
	return CodeUnknown
}

// HasCode reports whether any Error in err's chain carries code.
// Unlike GetCode, it looks past the outermost Error.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if apiErr, ok := err.(Error); ok && apiErr.Code() == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// GetClassification extracts the classification from the outermost Error in err's chain.
// Returns ClassificationPermanent if err is nil or carries no Error.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var apiErr Error
	if stderrors.As(err, &apiErr) {
		return apiErr.Classification()
	}
	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
