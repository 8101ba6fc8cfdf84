package store

import "errors"

// Sentinel errors returned by store and repository methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrNotFound is returned by lookup and update operations when no
	// document matches the given filter. By contract this is a hard
	// failure, not a nil-returning success; a diagnostic log entry is
	// always recorded before it is raised.
	ErrNotFound = errors.New("document not found")

	// ErrNoDocuments is the low-level adapter counterpart of ErrNotFound:
	// it is returned by the document store when a single-document operation
	// matches nothing. Repositories translate it into ErrNotFound (or into
	// a nil result, for delete).
	ErrNoDocuments = errors.New("no documents in result")

	// ErrDuplicateKey is returned when an insert violates a collection's
	// uniqueness constraint (PostgreSQL unique_violation, 23505). For the
	// users collection this means the email is already taken. The service
	// layer deliberately does not translate this into a distinct conflict
	// kind; it bubbles up unchanged.
	ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")

	// ErrIdentifierProvided is returned by Create when the entity already
	// carries an identifier. Identifiers are generated by the store;
	// callers must not synthesize them.
	ErrIdentifierProvided = errors.New("entity must not carry a pre-set identifier")
)

// Low-level database operation errors. These are returned (or wrapped) by
// document store methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan document row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan document rows")

	// ErrEncodingDocument is returned when an entity cannot be serialized
	// to its document representation, or a stored document cannot be
	// deserialized back into an entity.
	ErrEncodingDocument = errors.New("failed to encode or decode document")
)
