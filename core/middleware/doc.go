// Package middleware groups the HTTP middleware used by the server.
//
// Subpackages:
//   - rayid: assigns a unique ray id to every request for log correlation.
//   - auth: static API key protection for the API surface.
package middleware
