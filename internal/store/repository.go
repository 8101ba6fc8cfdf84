package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/semenovp/go-user-hub/internal/logger"
	"github.com/semenovp/go-user-hub/internal/utils"
)

// Entity is the contract every repository-managed type satisfies: it carries
// an identifier field and names its document collection. Concrete
// repositories compose [Repository] rather than extending a shared base.
type Entity interface {
	GetID() string
	CollectionName() string
}

// Repository is a generic CRUD façade over the [DocumentStore]. It enforces
// the "not found → error" contract uniformly across entity types so that
// callers never have to nil-check single-document lookups.
//
// One deliberate asymmetry is preserved from the original contract:
// [Repository.FindOneAndDelete] returns a nil result (not an error) when
// nothing matches, while [Repository.FindOne] and
// [Repository.FindOneAndUpdate] fail with [ErrNotFound].
type Repository[T Entity] struct {
	store  *DocumentStore
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewRepository constructs a [Repository] for entity type T backed by the
// given document store.
func NewRepository[T Entity](store *DocumentStore, logger *logger.Logger) *Repository[T] {
	logger.Debug().Str("collection", collectionOf[T]()).Msg("creating repository")
	return &Repository[T]{
		store:  store,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// collectionOf resolves the collection name of entity type T from its zero
// value.
func collectionOf[T Entity]() string {
	var probe T
	return probe.CollectionName()
}

// Create persists a new entity and returns the saved representation.
//
// The entity must not carry a pre-set identifier; the repository generates a
// fresh one and stamps the creation time before persistence.
//
// Error handling:
//   - pre-set identifier → [ErrIdentifierProvided].
//   - uniqueness violation → [ErrDuplicateKey] (propagated untranslated).
func (r *Repository[T]) Create(ctx context.Context, entity T) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	if entity.GetID() != "" {
		log.Error().Str("collection", collectionOf[T]()).Str("id", entity.GetID()).Msg("entity carries a pre-set identifier")
		return zero, ErrIdentifierProvided
	}

	doc, err := entityToDocument(entity)
	if err != nil {
		log.Err(err).Str("collection", collectionOf[T]()).Msg("failed to encode entity")
		return zero, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	id := r.ids.Generate()
	doc["id"] = id
	doc["created_at"] = time.Now().UTC().Format(time.RFC3339Nano)

	raw, err := json.Marshal(doc)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	saved, err := r.store.Insert(ctx, collectionOf[T](), id, raw)
	if err != nil {
		return zero, err
	}

	return documentToEntity[T](saved)
}

// FindOne returns the first stored entity matching the filter.
//
// A miss is a hard failure: a diagnostic log entry is recorded and
// [ErrNotFound] is returned. Callers therefore never need to nil-check.
func (r *Repository[T]) FindOne(ctx context.Context, filter Filter) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	doc, err := r.store.FindOne(ctx, collectionOf[T](), filter)
	if err != nil {
		if errors.Is(err, ErrNoDocuments) {
			log.Warn().Str("collection", collectionOf[T]()).Any("filter", filter).Msg("no document matched filter")
			return zero, ErrNotFound
		}

		return zero, err
	}

	return documentToEntity[T](doc)
}

// FindOneAndUpdate applies a partial field patch to the first entity
// matching the filter and returns the post-update state.
//
// Patched fields overwrite the stored ones; fields absent from the patch are
// left untouched. A miss behaves exactly like [Repository.FindOne]:
// diagnostic first, then [ErrNotFound].
func (r *Repository[T]) FindOneAndUpdate(ctx context.Context, filter Filter, patch map[string]any) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	raw, err := json.Marshal(patch)
	if err != nil {
		log.Err(err).Str("collection", collectionOf[T]()).Msg("failed to encode patch")
		return zero, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	doc, err := r.store.PatchOne(ctx, collectionOf[T](), filter, raw)
	if err != nil {
		if errors.Is(err, ErrNoDocuments) {
			log.Warn().Str("collection", collectionOf[T]()).Any("filter", filter).Msg("no document matched filter for update")
			return zero, ErrNotFound
		}

		return zero, err
	}

	return documentToEntity[T](doc)
}

// Find returns all entities matching the filter as a list, possibly empty.
// This is the one lookup operation that does not fail on empty results.
func (r *Repository[T]) Find(ctx context.Context, filter Filter) ([]T, error) {
	docs, err := r.store.FindAll(ctx, collectionOf[T](), filter)
	if err != nil {
		return nil, err
	}

	entities := make([]T, 0, len(docs))
	for _, doc := range docs {
		entity, decodeErr := documentToEntity[T](doc)
		if decodeErr != nil {
			return nil, decodeErr
		}

		entities = append(entities, entity)
	}

	return entities, nil
}

// FindOneAndDelete removes the first entity matching the filter and returns
// its pre-deletion state.
//
// Unlike [Repository.FindOne], a miss is not a failure: the method returns
// (nil, nil) as a no-match indicator. The asymmetry is part of the contract.
func (r *Repository[T]) FindOneAndDelete(ctx context.Context, filter Filter) (*T, error) {
	doc, err := r.store.DeleteOne(ctx, collectionOf[T](), filter)
	if err != nil {
		if errors.Is(err, ErrNoDocuments) {
			return nil, nil
		}

		return nil, err
	}

	entity, err := documentToEntity[T](doc)
	if err != nil {
		return nil, err
	}

	return &entity, nil
}

// entityToDocument converts an entity into its generic document form via its
// JSON field mapping.
func entityToDocument(entity any) (map[string]any, error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}

	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// documentToEntity decodes a stored jsonb document back into entity type T.
func documentToEntity[T Entity](doc []byte) (T, error) {
	var entity T
	if err := json.Unmarshal(doc, &entity); err != nil {
		return entity, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	return entity, nil
}
