// Package http implements the HTTP transport layer of the forum server.
// It provides middleware, route handlers, and the uniform response envelope
// for the REST API. Tracing, request logging, and session resolution are
// all handled at this layer before requests are forwarded to the service
// layer.
package http
