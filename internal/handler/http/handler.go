package http

import (
	"github.com/graphql-go/graphql"

	"github.com/semenovp/go-user-hub/internal/logger"
	"github.com/semenovp/go-user-hub/internal/service"
	"github.com/semenovp/go-user-hub/internal/validators"
)

type Handler struct {
	services  *service.Services
	schema    graphql.Schema
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, schema graphql.Schema, validator validators.Validator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		schema:    schema,
		validator: validator,
		logger:    logger,
	}
}
