package service

import (
	"github.com/semenovp/go-user-hub/internal/config"
	"github.com/semenovp/go-user-hub/internal/logger"
	"github.com/semenovp/go-user-hub/internal/store"
)

// Services bundles every service the transport layer depends on. It is
// built once at startup by the composition root and passed down explicitly.
type Services struct {
	UserService UserService
	AuthService AuthService
}

// NewServices wires all services on top of the given storages and
// configuration.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		UserService: NewUserService(storages.UserRepository, logger),
		AuthService: NewAuthService(cfg, logger),
	}
}
