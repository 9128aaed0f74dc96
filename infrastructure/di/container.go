package di

import (
	"polyamgraph/application/commands/bus"
	"polyamgraph/application/ports"
	querybus "polyamgraph/application/queries/bus"
	"polyamgraph/infrastructure/config"
	"polyamgraph/pkg/auth"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	ProfileRepo    ports.ProfileRepository
	ConnectionRepo ports.ConnectionRepository
	TokenVerifier  auth.TokenVerifier
	CommandBus     *bus.CommandBus
	QueryBus       *querybus.QueryBus
}
