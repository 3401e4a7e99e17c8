// Package gemini provides an implementation of the generation.Generator
// interface that calls Google's Gemini generateContent REST endpoint.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's domain logic to the external Gemini AI
// service. It translates between the application's prompts and the Gemini
// wire format without exposing the details of the external service to the
// core application.
//
// Key components:
//
// 1. Generator:
//   - Implements the generation.Generator interface
//   - Issues one HTTP POST per prompt, with the API key in the URL query
//   - Maps transport, status, and extraction failures to the sentinel
//     errors in the generation package
//
// 2. Prompt Assembly:
//   - Prepends a fixed framing preamble to every prompt
//   - Appends the answer format template the model must follow
//
// 3. Response Processing:
//   - Decodes the candidates array from the JSON response
//   - Extracts the first candidate's first text part verbatim
//
// The package talks to the API with net/http directly rather than through a
// client SDK, which keeps the request URL, payload, and extraction path
// under the application's control.
package gemini
