// Package api handles incoming HTTP requests, request validation, and
// response formatting for the assessment endpoints. It acts as an adapter
// between external clients and the assessment service, translating HTTP
// concerns to business operations and mapping internal errors to status
// codes and the {"detail": ...} wire shape.
package api
