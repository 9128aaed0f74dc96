package rest

import (
	"net/http"

	"polyamgraph/application/commands/bus"
	querybus "polyamgraph/application/queries/bus"
	"polyamgraph/infrastructure/config"
	"polyamgraph/interfaces/http/rest/handlers"
	"polyamgraph/interfaces/http/rest/middleware"
	"polyamgraph/pkg/auth"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg        *config.Config
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	verifier   auth.TokenVerifier
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	verifier auth.TokenVerifier,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:        cfg,
		commandBus: commandBus,
		queryBus:   queryBus,
		verifier:   verifier,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   rt.cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(middleware.AuthConfig{
			Verifier:              rt.verifier,
			Timeout:               rt.cfg.AuthTimeout,
			IPRequestsPerMinute:   rt.cfg.IPRequestsPerMinute,
			UserRequestsPerMinute: rt.cfg.UserRequestsPerMinute,
		}, rt.logger))

		// Network graph endpoint
		networkHandler := handlers.NewNetworkHandler(rt.queryBus, rt.logger)
		r.Get("/network", networkHandler.GetNetwork)

		// Profile endpoints
		r.Route("/profiles", func(r chi.Router) {
			profileHandler := handlers.NewProfileHandler(rt.commandBus, rt.queryBus, rt.logger)
			r.Get("/me", profileHandler.GetMe)
			r.Put("/me", profileHandler.UpdateMe)
			r.Get("/search", profileHandler.Search)
		})

		// Connection endpoints
		r.Route("/connections", func(r chi.Router) {
			connectionHandler := handlers.NewConnectionHandler(rt.commandBus, rt.queryBus, rt.logger)
			r.Get("/", connectionHandler.List)
			r.Post("/", connectionHandler.Create)
			r.Post("/{connectionID}/accept", connectionHandler.Accept)
			r.Post("/{connectionID}/reject", connectionHandler.Reject)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
