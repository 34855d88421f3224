// Package domain contains the core business entities and types for ticklist.
//
// This package defines:
//   - The Todo entity
//   - Input types for create and update operations
//   - Domain-level validation rules (via struct tags)
//
// # Design Philosophy
//
// Domain types are persistence-agnostic and represent the core
// business concepts independent of how they are stored or transmitted.
//
// # Naming Conventions
//
// Types named after an operation ("CreateTodo", "UpdateTodo") are input
// payloads. Optional fields on update payloads are pointers: nil means
// "leave unchanged", never "clear to the zero value".
package domain
