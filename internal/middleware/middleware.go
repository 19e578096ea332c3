// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as the per-endpoint CORS preamble and method gate, request
// logging, tracing, and panic recovery. GlobalErrorHandler turns every
// returned error into the failure envelope.
package middleware
