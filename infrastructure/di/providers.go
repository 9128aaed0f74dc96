package di

import (
	"polyamgraph/application/commands"
	"polyamgraph/application/commands/bus"
	commandhandlers "polyamgraph/application/commands/handlers"
	"polyamgraph/application/ports"
	"polyamgraph/application/queries"
	querybus "polyamgraph/application/queries/bus"
	queryhandlers "polyamgraph/application/queries/handlers"
	"polyamgraph/infrastructure/config"
	"polyamgraph/infrastructure/persistence/supabase"
	"polyamgraph/pkg/auth"

	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideSupabaseClient creates the Supabase client
func ProvideSupabaseClient(cfg *config.Config) (*supa.Client, error) {
	return supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey)
}

// ProvideProfileRepository creates the profile repository
func ProvideProfileRepository(client *supa.Client, logger *zap.Logger) ports.ProfileRepository {
	return supabase.NewProfileRepository(client, logger)
}

// ProvideConnectionRepository creates the connection repository
func ProvideConnectionRepository(client *supa.Client, logger *zap.Logger) ports.ConnectionRepository {
	return supabase.NewConnectionRepository(client, logger)
}

// ProvideTokenVerifier picks the token verification strategy: local
// HS256 validation when the project JWT secret is configured, remote
// GoTrue lookup otherwise.
func ProvideTokenVerifier(cfg *config.Config, client *supa.Client, logger *zap.Logger) (auth.TokenVerifier, error) {
	if cfg.SupabaseJWTSecret != "" {
		return auth.NewJWTVerifier(auth.JWTConfig{SecretKey: cfg.SupabaseJWTSecret})
	}
	logger.Warn("No SUPABASE_JWT_SECRET configured, validating tokens via GoTrue")
	return supabase.NewGoTrueVerifier(client, logger), nil
}

// ProvideCommandBus creates the command bus with all handlers registered
func ProvideCommandBus(
	profileRepo ports.ProfileRepository,
	connectionRepo ports.ConnectionRepository,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus()
	logging := bus.LoggingMiddleware(logger)

	registrations := []struct {
		cmd     bus.Command
		handler bus.CommandHandler
	}{
		{commands.CreateConnectionCommand{}, commandhandlers.NewCreateConnectionHandler(profileRepo, connectionRepo, logger)},
		{commands.RespondConnectionCommand{}, commandhandlers.NewRespondConnectionHandler(connectionRepo, logger)},
		{commands.UpdateProfileCommand{}, commandhandlers.NewUpdateProfileHandler(profileRepo, logger)},
	}

	for _, reg := range registrations {
		if err := commandBus.Register(reg.cmd, bus.Chain(reg.handler, logging)); err != nil {
			return nil, err
		}
	}

	return commandBus, nil
}

// ProvideQueryBus creates the query bus with all handlers registered
func ProvideQueryBus(
	profileRepo ports.ProfileRepository,
	connectionRepo ports.ConnectionRepository,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()

	registrations := []struct {
		query   querybus.Query
		handler querybus.QueryHandler
	}{
		{queries.GetNetworkQuery{}, queryhandlers.NewGetNetworkHandler(profileRepo, connectionRepo, logger)},
		{queries.ListConnectionsQuery{}, queryhandlers.NewListConnectionsHandler(connectionRepo, logger)},
		{queries.GetProfileQuery{}, queryhandlers.NewGetProfileHandler(profileRepo, logger)},
		{queries.SearchProfileQuery{}, queryhandlers.NewSearchProfileHandler(profileRepo, logger)},
	}

	for _, reg := range registrations {
		if err := queryBus.Register(reg.query, reg.handler); err != nil {
			return nil, err
		}
	}

	return queryBus, nil
}
