package llm

import "errors"

var (
	// ErrUnavailable indicates the chat-completions endpoint is unreachable.
	ErrUnavailable = errors.New("analysis endpoint unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("analysis request timed out")

	// ErrNoAPIKey indicates no API key was configured for the endpoint.
	ErrNoAPIKey = errors.New("no api key configured")

	// ErrEmptyResponse indicates the endpoint returned no choices.
	ErrEmptyResponse = errors.New("empty analysis response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("analysis retry attempts exhausted")
)
