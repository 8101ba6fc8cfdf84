package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semenovp/go-user-hub/internal/service"
	"github.com/semenovp/go-user-hub/models"
)

// graphQLResponse mirrors the wire shape of an executed GraphQL request.
type graphQLResponse struct {
	Data   map[string]any `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func postQuery(t *testing.T, h *Handler, body string, cookies ...*http.Cookie) (*httptest.ResponseRecorder, graphQLResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	var parsed graphQLResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	}
	return rec, parsed
}

func TestGraphQL_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, defaultTestServices())

	rec, _ := postQuery(t, h, `{"query": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGraphQL_EmptyQuery(t *testing.T) {
	h := newTestHandler(t, defaultTestServices())

	rec, _ := postQuery(t, h, `{"query": ""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrEmptyQuery.Error())
}

func TestGraphQL_ExecutionErrorsReportedWithStatusOK(t *testing.T) {
	// No session cookie: the users query fails inside the resolver, and the
	// failure travels in the payload's errors list, not in the HTTP status.
	h := newTestHandler(t, defaultTestServices())

	rec, resp := postQuery(t, h, `{"query": "{ users { id } }"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, resp.Errors)
	assert.Contains(t, resp.Errors[0].Message, "unauthenticated")
}

func TestGraphQL_CreateUserWithoutSession(t *testing.T) {
	svcs := &service.Services{
		UserService: &mockUserService{
			createFn: func(_ context.Context, input models.CreateUserInput) (models.User, error) {
				return models.User{ID: "id-1", Email: input.Email}, nil
			},
		},
		AuthService: &mockAuthService{},
	}
	h := newTestHandler(t, svcs)

	body := `{
		"query": "mutation ($input: CreateUserInput!) { createUser(input: $input) { id email } }",
		"variables": {"input": {"email": "new@example.com", "password": "sup3rsecret"}}
	}`
	rec, resp := postQuery(t, h, body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, resp.Errors)

	created := resp.Data["createUser"].(map[string]any)
	assert.Equal(t, "id-1", created["id"])
	assert.Equal(t, "new@example.com", created["email"])
}

func TestGraphQL_SessionCookieUnlocksProtectedQuery(t *testing.T) {
	svcs := &service.Services{
		UserService: &mockUserService{
			listFn: func(_ context.Context) ([]models.User, error) {
				return []models.User{{ID: "id-1", Email: "user@example.com"}}, nil
			},
		},
		AuthService: &mockAuthService{
			parseSessionFn: func(_ context.Context, tokenString string) (models.Principal, error) {
				if tokenString != "signed-token" {
					return models.Principal{}, service.ErrSessionInvalid
				}
				return models.Principal{UserID: "id-1", Email: "user@example.com"}, nil
			},
		},
	}
	h := newTestHandler(t, svcs)

	cookie := &http.Cookie{Name: service.SessionCookieName, Value: "signed-token"}
	rec, resp := postQuery(t, h, `{"query": "{ users { id email } }"}`, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, resp.Errors)

	list := resp.Data["users"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "user@example.com", list[0].(map[string]any)["email"])
}
