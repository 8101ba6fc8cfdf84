// Package graph defines the GraphQL schema and resolvers of the user API.
//
// The schema exposes one object type, User, plus the account queries and
// mutations built on top of [service.UserService]. The User type is shaped
// after [models.PublicUser]: it deliberately has no password field, so a
// stored hash can never be selected regardless of the query sent.
//
// Resolvers read the authenticated principal from the execution context
// (attached by the HTTP session middleware). Every operation except the
// createUser mutation requires one.
package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/semenovp/go-user-hub/internal/logger"
	"github.com/semenovp/go-user-hub/internal/service"
	"github.com/semenovp/go-user-hub/internal/validators"
	"github.com/semenovp/go-user-hub/models"
)

// Resolver carries the dependencies shared by all field resolvers.
type Resolver struct {
	users     service.UserService
	validator validators.Validator
	logger    *logger.Logger
}

// NewSchema builds the executable GraphQL schema backed by the given user
// service. Input validation runs inside the mutation resolvers, so the
// schema is safe to expose directly on an HTTP endpoint.
func NewSchema(users service.UserService, validator validators.Validator, log *logger.Logger) (graphql.Schema, error) {
	r := &Resolver{
		users:     users,
		validator: validator,
		logger:    log,
	}

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "User",
		Description: "A registered user account.",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.ID),
				Resolve: resolvePublicUserField(func(u models.PublicUser) any { return u.ID }),
			},
			"email": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.String),
				Resolve: resolvePublicUserField(func(u models.PublicUser) any { return u.Email }),
			},
			"createdAt": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.DateTime),
				Resolve: resolvePublicUserField(func(u models.PublicUser) any { return u.CreatedAt }),
			},
		},
	})

	createUserInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email": &graphql.InputObjectFieldConfig{
				Type: graphql.NewNonNull(graphql.String),
			},
			"password": &graphql.InputObjectFieldConfig{
				Type: graphql.NewNonNull(graphql.String),
			},
		},
	})

	updateUserInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id": &graphql.InputObjectFieldConfig{
				Type: graphql.NewNonNull(graphql.ID),
			},
			"email": &graphql.InputObjectFieldConfig{
				Type: graphql.String,
			},
			"password": &graphql.InputObjectFieldConfig{
				Type: graphql.String,
			},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userType))),
				Description: "All registered users.",
				Resolve:     r.resolveUsers,
			},
			"user": &graphql.Field{
				Type:        userType,
				Description: "A single user looked up by identifier.",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.ID),
					},
				},
				Resolve: r.resolveUser,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type:        graphql.NewNonNull(userType),
				Description: "Register a new user account.",
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(createUserInput),
					},
				},
				Resolve: r.resolveCreateUser,
			},
			"updateUser": &graphql.Field{
				Type:        graphql.NewNonNull(userType),
				Description: "Apply a partial update to an existing user.",
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(updateUserInput),
					},
				},
				Resolve: r.resolveUpdateUser,
			},
			"removeUser": &graphql.Field{
				Type:        userType,
				Description: "Delete a user and return its pre-deletion state, or null when nothing matched.",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.ID),
					},
				},
				Resolve: r.resolveRemoveUser,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
