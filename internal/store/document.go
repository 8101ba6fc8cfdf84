package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/semenovp/go-user-hub/internal/logger"
)

// DocumentStore is the adapter between the repository layer and PostgreSQL.
// It exposes document-oriented operations against one table per collection,
// each row holding a generated identifier and a jsonb document.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type DocumentStore struct {
	db     *DB
	logger *logger.Logger
}

// NewDocumentStore constructs a [DocumentStore] backed by the provided
// database connection and logger.
func NewDocumentStore(db *DB, logger *logger.Logger) *DocumentStore {
	logger.Debug().Msg("creating document store")
	return &DocumentStore{
		db:     db,
		logger: logger,
	}
}

// Insert persists a new document under the given identifier and returns the
// stored representation.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateKey].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (s *DocumentStore) Insert(ctx context.Context, collection, id string, doc []byte) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertQuery(collection, id, doc)
	if err != nil {
		log.Err(err).Str("func", "DocumentStore.Insert").Str("collection", collection).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&saved); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Err(err).Str("func", "DocumentStore.Insert").Str("collection", collection).Msg("unique constraint violated")
			return nil, ErrDuplicateKey
		}

		log.Err(err).Str("func", "DocumentStore.Insert").Str("collection", collection).Msg("failed to insert document")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

// FindOne returns the first document matching the filter.
//
// Returns [ErrNoDocuments] when nothing matches; the caller decides whether
// a miss is a failure.
func (s *DocumentStore) FindOne(ctx context.Context, collection string, filter Filter) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindOneQuery(collection, filter)
	if err != nil {
		log.Err(err).Str("func", "DocumentStore.FindOne").Str("collection", collection).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var doc []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoDocuments
		}

		log.Err(err).Str("func", "DocumentStore.FindOne").Str("collection", collection).Msg("failed to query document")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc, nil
}

// FindAll returns every document matching the filter, in identifier order.
// An empty result is not an error.
func (s *DocumentStore) FindAll(ctx context.Context, collection string, filter Filter) ([][]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAllQuery(collection, filter)
	if err != nil {
		log.Err(err).Str("func", "DocumentStore.FindAll").Str("collection", collection).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "DocumentStore.FindAll").Str("collection", collection).Msg("failed to query documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([][]byte, 0, 16)
	for rows.Next() {
		var doc []byte
		if scanErr := rows.Scan(&doc); scanErr != nil {
			log.Err(scanErr).Str("func", "DocumentStore.FindAll").Str("collection", collection).Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		docs = append(docs, doc)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "DocumentStore.FindAll").Str("collection", collection).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return docs, nil
}

// PatchOne applies a partial field patch to the first document matching the
// filter and returns the post-update state.
//
// Returns [ErrNoDocuments] when nothing matches.
func (s *DocumentStore) PatchOne(ctx context.Context, collection string, filter Filter, patch []byte) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPatchOneQuery(collection, filter, patch)
	if err != nil {
		log.Err(err).Str("func", "DocumentStore.PatchOne").Str("collection", collection).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoDocuments
		}

		log.Err(err).Str("func", "DocumentStore.PatchOne").Str("collection", collection).Msg("failed to patch document")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// DeleteOne removes the first document matching the filter and returns its
// pre-deletion state.
//
// Returns [ErrNoDocuments] when nothing matches.
func (s *DocumentStore) DeleteOne(ctx context.Context, collection string, filter Filter) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOneQuery(collection, filter)
	if err != nil {
		log.Err(err).Str("func", "DocumentStore.DeleteOne").Str("collection", collection).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoDocuments
		}

		log.Err(err).Str("func", "DocumentStore.DeleteOne").Str("collection", collection).Msg("failed to delete document")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return deleted, nil
}
