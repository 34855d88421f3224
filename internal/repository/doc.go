// Package repository contains data access implementations for ticklist.
//
// The TodoRepository interface is defined at the service layer
// (consumer-defined interfaces) following Go's dependency inversion
// best practices. This package contains the concrete implementations:
//
//   - memory:   an in-process map guarded by a single RWMutex
//   - postgres: a transactional store on a pgx connection pool
//
// Both backends expose identical observable behavior; they differ only
// in id assignment mechanics (monotonic counter vs BIGSERIAL) and in
// the infrastructure error kinds the postgres backend can surface.
//
// # Thread Safety
//
// All repository implementations are safe for concurrent use.
// Connection pools are managed at the database layer.
package repository
