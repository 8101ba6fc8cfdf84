package graph

import (
	"context"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/semenovp/go-user-hub/internal/logger"
	"github.com/semenovp/go-user-hub/internal/mock"
	"github.com/semenovp/go-user-hub/internal/store"
	"github.com/semenovp/go-user-hub/internal/utils"
	"github.com/semenovp/go-user-hub/internal/validators"
	"github.com/semenovp/go-user-hub/models"
)

func newTestSchema(t *testing.T) (graphql.Schema, *mock.MockUserService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mock.NewMockUserService(ctrl)

	schema, err := NewSchema(users, validators.NewUserValidator(), logger.Nop())
	require.NoError(t, err)

	return schema, users
}

func authenticatedContext() context.Context {
	principal := models.Principal{UserID: "7d9c5c2e-0000-7000-8000-000000000001", Email: "caller@example.com"}
	return context.WithValue(context.Background(), utils.PrincipalCtxKey, principal)
}

func execute(schema graphql.Schema, ctx context.Context, query string, vars map[string]any) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: vars,
		Context:        ctx,
	})
}

func TestUsersQuery(t *testing.T) {
	schema, users := newTestSchema(t)

	createdAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	users.EXPECT().List(gomock.Any()).Return([]models.User{
		{ID: "id-1", Email: "first@example.com", PasswordHash: "$2a$10$hash", CreatedAt: createdAt},
		{ID: "id-2", Email: "second@example.com", PasswordHash: "$2a$10$hash", CreatedAt: createdAt},
	}, nil)

	result := execute(schema, authenticatedContext(), `{ users { id email createdAt } }`, nil)

	require.Empty(t, result.Errors)
	data := result.Data.(map[string]any)
	list := data["users"].([]any)
	require.Len(t, list, 2)

	first := list[0].(map[string]any)
	assert.Equal(t, "id-1", first["id"])
	assert.Equal(t, "first@example.com", first["email"])
	assert.NotContains(t, first, "password")
}

func TestUsersQueryRequiresPrincipal(t *testing.T) {
	schema, _ := newTestSchema(t)

	result := execute(schema, context.Background(), `{ users { id } }`, nil)

	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, ErrUnauthenticated.Error())
}

func TestUserQuery(t *testing.T) {
	schema, users := newTestSchema(t)

	users.EXPECT().
		Get(gomock.Any(), "id-1").
		Return(models.User{ID: "id-1", Email: "first@example.com"}, nil)

	result := execute(schema, authenticatedContext(),
		`query ($id: ID!) { user(id: $id) { id email } }`,
		map[string]any{"id": "id-1"})

	require.Empty(t, result.Errors)
	user := result.Data.(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "first@example.com", user["email"])
}

func TestUserQueryNotFound(t *testing.T) {
	schema, users := newTestSchema(t)

	users.EXPECT().
		Get(gomock.Any(), "missing").
		Return(models.User{}, store.ErrNotFound)

	result := execute(schema, authenticatedContext(),
		`query ($id: ID!) { user(id: $id) { id } }`,
		map[string]any{"id": "missing"})

	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, ErrUserNotFound.Error())
}

func TestCreateUserMutationIsPublic(t *testing.T) {
	schema, users := newTestSchema(t)

	users.EXPECT().
		Create(gomock.Any(), models.CreateUserInput{Email: "new@example.com", Password: "sup3rsecret"}).
		Return(models.User{ID: "id-3", Email: "new@example.com", PasswordHash: "$2a$10$hash"}, nil)

	// Unauthenticated context on purpose: registration must not require
	// an existing session.
	result := execute(schema, context.Background(),
		`mutation ($input: CreateUserInput!) { createUser(input: $input) { id email } }`,
		map[string]any{"input": map[string]any{"email": "new@example.com", "password": "sup3rsecret"}})

	require.Empty(t, result.Errors)
	created := result.Data.(map[string]any)["createUser"].(map[string]any)
	assert.Equal(t, "id-3", created["id"])
	assert.NotContains(t, created, "password")
}

func TestCreateUserMutationValidatesInput(t *testing.T) {
	schema, _ := newTestSchema(t)

	result := execute(schema, context.Background(),
		`mutation ($input: CreateUserInput!) { createUser(input: $input) { id } }`,
		map[string]any{"input": map[string]any{"email": "not-an-email", "password": "short"}})

	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, validators.ErrInvalidEmail.Error())
}

func TestCreateUserMutationDuplicateEmail(t *testing.T) {
	schema, users := newTestSchema(t)

	users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrDuplicateKey)

	result := execute(schema, context.Background(),
		`mutation ($input: CreateUserInput!) { createUser(input: $input) { id } }`,
		map[string]any{"input": map[string]any{"email": "taken@example.com", "password": "sup3rsecret"}})

	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, store.ErrDuplicateKey.Error())
}

func TestUpdateUserMutation(t *testing.T) {
	schema, users := newTestSchema(t)

	users.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input models.UpdateUserInput) (models.User, error) {
			require.Equal(t, "id-1", input.ID)
			require.NotNil(t, input.Email)
			require.Nil(t, input.Password)
			return models.User{ID: "id-1", Email: *input.Email}, nil
		})

	result := execute(schema, authenticatedContext(),
		`mutation ($input: UpdateUserInput!) { updateUser(input: $input) { id email } }`,
		map[string]any{"input": map[string]any{"id": "id-1", "email": "renamed@example.com"}})

	require.Empty(t, result.Errors)
	updated := result.Data.(map[string]any)["updateUser"].(map[string]any)
	assert.Equal(t, "renamed@example.com", updated["email"])
}

func TestUpdateUserMutationRequiresPrincipal(t *testing.T) {
	schema, _ := newTestSchema(t)

	result := execute(schema, context.Background(),
		`mutation ($input: UpdateUserInput!) { updateUser(input: $input) { id } }`,
		map[string]any{"input": map[string]any{"id": "id-1", "email": "renamed@example.com"}})

	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, ErrUnauthenticated.Error())
}

func TestRemoveUserMutation(t *testing.T) {
	schema, users := newTestSchema(t)

	users.EXPECT().
		Remove(gomock.Any(), "id-1").
		Return(&models.User{ID: "id-1", Email: "gone@example.com"}, nil)

	result := execute(schema, authenticatedContext(),
		`mutation ($id: ID!) { removeUser(id: $id) { id email } }`,
		map[string]any{"id": "id-1"})

	require.Empty(t, result.Errors)
	removed := result.Data.(map[string]any)["removeUser"].(map[string]any)
	assert.Equal(t, "gone@example.com", removed["email"])
}

func TestRemoveUserMutationMissingUserResolvesToNull(t *testing.T) {
	schema, users := newTestSchema(t)

	users.EXPECT().Remove(gomock.Any(), "missing").Return(nil, nil)

	result := execute(schema, authenticatedContext(),
		`mutation ($id: ID!) { removeUser(id: $id) { id } }`,
		map[string]any{"id": "missing"})

	require.Empty(t, result.Errors)
	assert.Nil(t, result.Data.(map[string]any)["removeUser"])
}

func TestSchemaExposesNoPasswordField(t *testing.T) {
	schema, _ := newTestSchema(t)

	result := execute(schema, authenticatedContext(), `{ users { password } }`, nil)

	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, `Cannot query field "password"`)
}
