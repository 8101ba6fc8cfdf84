package http

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/semenovp/go-user-hub/internal/app"
	"github.com/semenovp/go-user-hub/internal/logger"
	"github.com/semenovp/go-user-hub/internal/utils"
)

// graphQLRequest is the standard GraphQL-over-HTTP POST body.
type graphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// graphQL executes a single GraphQL request against the schema.
//
// The request context flows into resolver execution unchanged, so the
// principal attached by the session middleware and the request-scoped logger
// are both visible inside resolvers. Execution errors are reported in the
// response body's "errors" list with HTTP 200, per GraphQL-over-HTTP
// convention; only an unreadable request body yields a non-200 status.
func (h *Handler) graphQL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req graphQLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	if req.Query == "" {
		log.Err(ErrEmptyQuery).Send()
		http.Error(w, ErrEmptyQuery.Error(), http.StatusBadRequest)
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})

	if len(result.Errors) > 0 {
		log.Warn().Any("errors", result.Errors).Msg("graphql execution returned errors")
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
