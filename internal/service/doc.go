// Package service implements the authorization-aware domain services
// governing the user, job and response lifecycles. Services enforce every
// role and ownership rule before touching the store layer and translate
// nothing themselves: store errors pass through typed, policy violations are
// raised here, and the HTTP layer maps both to status codes.
package service
