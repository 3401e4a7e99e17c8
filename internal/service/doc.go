// Package service contains the application-specific use cases and business
// logic. It orchestrates the flow from an inbound assessment request through
// prompt rendering to the generation provider and back.
//
// The service package implements the application layer in the clean
// architecture, coordinating the domain layer and the generation boundary
// while abstracting away infrastructure details.
//
// Key components:
//
// 1. Service Interfaces:
//   - Define the application operations available to the delivery mechanisms
//   - AssessmentService covers end-to-end assessment generation
//
// 2. Use Case Implementations:
//   - Validate requests before any external call is made
//   - Fan a multi-card request out into one generation call per card,
//     preserving card order and failing fast on the first error
//
// 3. Dependency Management:
//   - Services receive dependencies through constructor injection
//   - Core dependencies are the generation.Generator boundary and a logger
//
// 4. Error Handling:
//   - Pass domain validation errors through verbatim for the API layer to
//     map to client errors
//   - Wrap provider failures with operation context
//
// The service layer depends on domain entities and the generation interface,
// but never on specific infrastructure implementations, maintaining the
// Dependency Inversion Principle of clean architecture.
package service
