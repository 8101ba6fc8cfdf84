// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware for the two
// public surfaces: the REST login endpoint and the GraphQL query endpoint.
// Cross-cutting concerns such as session authentication, request tracing,
// and access logging are handled in this package before requests are
// delegated to the service layer or the GraphQL executor.
package http
