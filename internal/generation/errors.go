package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrTransportFailure is returned when the provider cannot be reached
	// at all: connection refused, DNS failure, or a timeout.
	ErrTransportFailure = errors.New("error contacting generation provider")

	// ErrProviderResponse is returned when the provider answers with a
	// non-success status or a body that cannot be decoded.
	ErrProviderResponse = errors.New("unexpected response from generation provider")

	// ErrExtraction is returned when the provider response decodes cleanly
	// but does not contain generated text at the expected location.
	ErrExtraction = errors.New("no generated text in provider response")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
