// Package redact provides utilities for scrubbing sensitive values from
// strings before they are logged or returned in error responses. The main
// hazard in this service is the provider API key: it travels as a URL query
// parameter, so transport errors echo it back inside the failing URL.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
)

// Precompiled regex patterns
var (
	// key/token query parameters, as echoed by url.Error when a request fails
	queryKeyRegex = regexp.MustCompile(`(?i)([?&](?:api[_-]?key|key|token)=)[^&\s"']+`)

	// credential assignments in config dumps or error text
	assignmentRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|secret|token|password)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Authorization header values
	bearerRegex = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]+=*`)
)

// String redacts sensitive values from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := queryKeyRegex.ReplaceAllString(input, "${1}"+RedactedKeyPlaceholder)
	result = assignmentRegex.ReplaceAllString(result, "${1}${2}"+RedactedCredentialPlaceholder)
	result = bearerRegex.ReplaceAllString(result, RedactedCredentialPlaceholder)

	return result
}

// Error redacts sensitive values from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
