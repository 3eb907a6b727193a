// Package middlewares provides the built-in middleware for torch
// applications: request logging, CORS and security headers, concurrency
// and rate limiting, timeouts, body size limits, request IDs, input
// validation, panic recovery, and Prometheus metrics.
//
// Every constructor follows the same shape: a Config struct with sensible
// defaults, functional options to override them, and a returned
// torch.Middleware ready to pass to App.Use. Middleware runs in
// registration order on the way in and reverse order on the way out.
package middlewares
