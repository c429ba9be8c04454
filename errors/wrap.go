package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps err with a code and message while preserving it as the cause.
//
// If err already carries an Error, its classification is preserved.
// Otherwise, the default classification for code is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	resp, err := transport.Do(ctx, req)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeNetwork, "request failed")
//	}
func Wrap(err error, code ErrorCode, message string) Error {
	if err == nil {
		return nil
	}

	classification := defaultClassification(code)
	var apiErr Error
	if errors.As(err, &apiErr) {
		classification = apiErr.Classification()
	}

	return &apiError{
		code:           code,
		classification: classification,
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps err with a formatted message.
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) Error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}
