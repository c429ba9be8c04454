package errors

// ErrorClassification indicates whether repeating a failed operation could succeed.
type ErrorClassification string

const (
	// ClassificationRetryable indicates a temporary failure (network, rate limit, 5xx).
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates a failure that repeats until the caller changes something.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification is ClassificationRetryable.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
// Codes not listed are permanent.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeNetwork: ClassificationRetryable,
}

func defaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
