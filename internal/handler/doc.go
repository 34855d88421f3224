// Package handler contains the HTTP handlers for ticklist.
//
// Handlers are thin wrappers: they decode and sanity-check the request,
// call the service layer, and map service errors to HTTP status codes.
// No storage or business logic lives here.
package handler
