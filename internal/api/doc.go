// Package api implements the HTTP layer of the job board: request models,
// handlers for the auth, user, job and response endpoints, and the mapping
// from domain errors to HTTP status codes. Handlers validate input, delegate
// to the service layer and translate errors; authorization decisions live in
// the services, never here.
package api
