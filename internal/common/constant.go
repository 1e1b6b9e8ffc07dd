// Package common contains shared constants and helpers used across
// gophauth components.
package common

// TokenStorageKey is the key of the persisted bearer token slot.
const TokenStorageKey = "token"

// AuthorizationHeaderName carries the bearer token on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName carries the per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"

// BearerScheme is the token type assumed when the server omits one.
const BearerScheme = "bearer"
