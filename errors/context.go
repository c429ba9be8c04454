package errors

import "errors"

// WithContext adds a single context field to an error.
// Existing context fields are preserved.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeFileNotFound, "file not found")
//	err = errors.WithContext(err, "path", localPath)
func WithContext(err error, key string, value interface{}) Error {
	if err == nil {
		return nil
	}
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// New fields override existing fields with the same key.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	apiErr := asError(err)

	newContext := make(map[string]interface{})
	for k, v := range apiErr.Context() {
		newContext[k] = v
	}
	for k, v := range ctx {
		newContext[k] = v
	}

	return &apiError{
		code:           apiErr.Code(),
		classification: apiErr.Classification(),
		message:        apiErr.Message(),
		context:        newContext,
		cause:          apiErr.Unwrap(),
	}
}

// WithClassification overrides the classification of an error.
//
// This is used when the code alone does not decide retryability, for example
// an unexpected response that is permanent for HTTP 404 but retryable for HTTP 503.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithClassification(err error, classification ErrorClassification) Error {
	if err == nil {
		return nil
	}

	apiErr := asError(err)

	return &apiError{
		code:           apiErr.Code(),
		classification: classification,
		message:        apiErr.Message(),
		context:        apiErr.Context(),
		cause:          apiErr.Unwrap(),
	}
}

// asError returns err as an Error, converting plain errors with CodeUnknown.
func asError(err error) Error {
	var apiErr Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &apiError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
