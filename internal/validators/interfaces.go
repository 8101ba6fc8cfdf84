package validators

import "context"

// Validator checks an input object before it reaches business logic.
// Implementations return nil on success or an error joining every violated
// constraint, so that the API boundary can enumerate them for the client.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
