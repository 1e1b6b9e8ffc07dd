// Package client talks to the remote authentication API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register and Login, both unauthenticated.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) that posts to
//     {base}/register and {base}/login, tags every request with an
//     X-Request-ID, and decodes error bodies into *APIError.
//
// # Error Handling
//
// Server rejections are returned as *APIError carrying the server's detail
// message verbatim and, when the server provides one, the offending form
// field. Transport failures wrap ErrUnavailable. Callers match with
// errors.Is / errors.As: ErrUnavailable, ErrUnauthorized, ErrConflict,
// ErrInvalidRequest, ErrMalformedResponse.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation; the configured timeout is the only
// deadline the client adds on its own.
package client
