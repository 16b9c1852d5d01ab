// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request logging, request ids, CORS, tracing,
// rate limiting, and panic recovery.
package middleware
