package graph

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/semenovp/go-user-hub/internal/logger"
	"github.com/semenovp/go-user-hub/internal/store"
	"github.com/semenovp/go-user-hub/internal/utils"
	"github.com/semenovp/go-user-hub/models"
)

// resolvePublicUserField builds a field resolver that projects one attribute
// of a [models.PublicUser] source. Defined explicitly instead of relying on
// the library's reflective default resolver: field names in the schema use
// camelCase while the struct's JSON tags use snake_case, and an explicit
// projection keeps the exposed set of fields auditable in one place.
func resolvePublicUserField(project func(u models.PublicUser) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		user, ok := p.Source.(models.PublicUser)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected source type %T", ErrInvalidInput, p.Source)
		}
		return project(user), nil
	}
}

// requirePrincipal returns the authenticated principal attached to the
// execution context, or [ErrUnauthenticated] when the request carried no
// valid session.
func requirePrincipal(p graphql.ResolveParams) (models.Principal, error) {
	principal, ok := utils.GetPrincipalFromContext(p.Context)
	if !ok {
		return models.Principal{}, ErrUnauthenticated
	}
	return principal, nil
}

func (r *Resolver) resolveUsers(p graphql.ResolveParams) (any, error) {
	log := logger.FromContext(p.Context)

	if _, err := requirePrincipal(p); err != nil {
		return nil, err
	}

	users, err := r.users.List(p.Context)
	if err != nil {
		log.Error().Err(err).Str("func", "resolveUsers").Msg("listing users failed")
		return nil, err
	}

	public := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public, nil
}

func (r *Resolver) resolveUser(p graphql.ResolveParams) (any, error) {
	log := logger.FromContext(p.Context)

	if _, err := requirePrincipal(p); err != nil {
		return nil, err
	}

	id, ok := p.Args["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	user, err := r.users.Get(p.Context, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error().Err(err).Str("func", "resolveUser").Msg("user lookup failed")
		return nil, err
	}
	return user.Public(), nil
}

func (r *Resolver) resolveCreateUser(p graphql.ResolveParams) (any, error) {
	log := logger.FromContext(p.Context)

	input, err := decodeCreateUserInput(p.Args["input"])
	if err != nil {
		return nil, err
	}
	if err := r.validator.Validate(p.Context, input); err != nil {
		return nil, err
	}

	user, err := r.users.Create(p.Context, input)
	if err != nil {
		log.Error().Err(err).Str("func", "resolveCreateUser").Msg("user creation failed")
		return nil, err
	}
	return user.Public(), nil
}

func (r *Resolver) resolveUpdateUser(p graphql.ResolveParams) (any, error) {
	log := logger.FromContext(p.Context)

	if _, err := requirePrincipal(p); err != nil {
		return nil, err
	}

	input, err := decodeUpdateUserInput(p.Args["input"])
	if err != nil {
		return nil, err
	}
	if err := r.validator.Validate(p.Context, input); err != nil {
		return nil, err
	}

	user, err := r.users.Update(p.Context, input)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error().Err(err).Str("func", "resolveUpdateUser").Msg("user update failed")
		return nil, err
	}
	return user.Public(), nil
}

func (r *Resolver) resolveRemoveUser(p graphql.ResolveParams) (any, error) {
	log := logger.FromContext(p.Context)

	if _, err := requirePrincipal(p); err != nil {
		return nil, err
	}

	id, ok := p.Args["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	removed, err := r.users.Remove(p.Context, id)
	if err != nil {
		log.Error().Err(err).Str("func", "resolveRemoveUser").Msg("user removal failed")
		return nil, err
	}
	if removed == nil {
		// Deleting an absent user is not an error: the field resolves
		// to null.
		return nil, nil
	}
	return removed.Public(), nil
}

// decodeCreateUserInput converts the raw argument map produced by the
// GraphQL engine into the typed mutation payload.
func decodeCreateUserInput(arg any) (models.CreateUserInput, error) {
	raw, ok := arg.(map[string]any)
	if !ok {
		return models.CreateUserInput{}, fmt.Errorf("%w: input object expected", ErrInvalidInput)
	}

	input := models.CreateUserInput{}
	if email, ok := raw["email"].(string); ok {
		input.Email = email
	}
	if password, ok := raw["password"].(string); ok {
		input.Password = password
	}
	return input, nil
}

// decodeUpdateUserInput converts the raw argument map of the updateUser
// mutation. Absent optional fields stay nil so the patch leaves them
// untouched.
func decodeUpdateUserInput(arg any) (models.UpdateUserInput, error) {
	raw, ok := arg.(map[string]any)
	if !ok {
		return models.UpdateUserInput{}, fmt.Errorf("%w: input object expected", ErrInvalidInput)
	}

	input := models.UpdateUserInput{}
	if id, ok := raw["id"].(string); ok {
		input.ID = id
	}
	if email, ok := raw["email"].(string); ok {
		input.Email = &email
	}
	if password, ok := raw["password"].(string); ok {
		input.Password = &password
	}
	return input, nil
}
