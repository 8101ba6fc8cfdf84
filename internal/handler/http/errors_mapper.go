package http

import (
	"errors"
	"net/http"

	"github.com/semenovp/go-user-hub/internal/service"
	"github.com/semenovp/go-user-hub/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:    http.StatusBadRequest,
	service.ErrAuthenticationRejected: http.StatusUnauthorized,
	service.ErrSessionInvalid:         http.StatusUnauthorized,
	service.ErrTokenCreationFailed:    http.StatusInternalServerError,
	service.ErrPasswordHashingFailed:  http.StatusInternalServerError,

	store.ErrNotFound:     http.StatusNotFound,
	store.ErrDuplicateKey: http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
