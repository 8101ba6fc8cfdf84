package store

import (
	"github.com/semenovp/go-user-hub/internal/logger"
)

// Storages bundles every repository the service layer depends on. It is
// built once at startup by the composition root and passed down explicitly.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages wires the document store and all repositories on top of the
// given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	documents := NewDocumentStore(db, logger)

	return &Storages{
		UserRepository: NewUserRepository(documents, logger),
	}
}
