// Package service contains the business logic layer for ticklist.
//
// Services coordinate between handlers and repositories. The
// TodoRepository interface is defined here (consumer-defined interface)
// so the service is parametric over the storage backend: the in-memory
// and PostgreSQL implementations are interchangeable, and tests can
// substitute mocks.
//
// # Responsibilities
//
//   - Input validation (length bounds on todo text)
//   - Delegation of CRUD operations to the configured backend
//
// # Thread Safety
//
// Services hold no mutable state of their own and are safe for
// concurrent use from multiple goroutines; concurrency control lives in
// the repository implementations.
package service
