package generation

import "errors"

// Errors produced while talking to a model. Generators only log them, but
// Provider implementations return them so failures can be told apart.
var (
	// ErrEmptyResponse is returned when the model produced no text.
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrInvalidResponse is returned when the response does not match the
	// expected schema or is not valid JSON.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the provider refused the prompt or
	// the output due to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned when retries were exhausted for errors
	// that might succeed later.
	ErrTransientFailure = errors.New("transient error during content generation")

	// ErrRequestRejected is returned when the provider refused the request
	// itself, for example because of bad credentials.
	ErrRequestRejected = errors.New("request rejected by language model provider")

	// ErrInvalidConfig is returned when a provider is constructed with
	// unusable settings.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
