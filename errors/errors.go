package errors

import "fmt"

// Error extends the standard error interface with structured information.
type Error interface {
	error

	// Code returns the error code identifying the failure kind.
	Code() ErrorCode

	// Classification returns whether repeating the operation could succeed.
	Classification() ErrorClassification

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error, or nil.
	Unwrap() error
}

// apiError is the concrete implementation of Error.
// It is private to enforce construction through package functions.
type apiError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error returns "[CODE] message" or "[CODE] message: cause".
func (e *apiError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *apiError) Code() ErrorCode {
	return e.code
}

func (e *apiError) Classification() ErrorClassification {
	return e.classification
}

func (e *apiError) Message() string {
	return e.message
}

// Context returns a copy of the context map.
func (e *apiError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	ctx := make(map[string]interface{}, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return ctx
}

func (e *apiError) Unwrap() error {
	return e.cause
}

// New creates an Error with the given code and message.
// The classification is the default for the code.
func New(code ErrorCode, message string) Error {
	return &apiError{
		code:           code,
		classification: defaultClassification(code),
		message:        message,
	}
}

// Newf creates an Error with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) Error {
	return New(code, fmt.Sprintf(format, args...))
}
