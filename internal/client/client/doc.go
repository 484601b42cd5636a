// Package client is the CLI's view of the HeartTrack server.
//
// Client is the transport-agnostic contract; HTTPClient implements it over
// the server's JSON endpoints, keeping the session cookie in a cookie jar.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Error replies become *APIError,
// which carries the server's message and matches ErrUnauthorized,
// ErrForbidden, ErrConflict, ErrBadRequest or ErrUnavailable with errors.Is.
package client
