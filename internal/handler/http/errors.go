package http

import "errors"

var (
	// ErrEmptyQuery is returned by the GraphQL endpoint when the request
	// body decodes cleanly but contains no query document.
	ErrEmptyQuery = errors.New("empty graphql query")
)
