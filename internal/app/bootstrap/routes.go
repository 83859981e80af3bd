// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	eventsfeature "github.com/campushub/campushub/internal/app/features/events"
	followsfeature "github.com/campushub/campushub/internal/app/features/follows"
	healthfeature "github.com/campushub/campushub/internal/app/features/health"
	homefeature "github.com/campushub/campushub/internal/app/features/home"
	loginfeature "github.com/campushub/campushub/internal/app/features/login"
	registerfeature "github.com/campushub/campushub/internal/app/features/register"
	registrationsfeature "github.com/campushub/campushub/internal/app/features/registrations"
	societiesfeature "github.com/campushub/campushub/internal/app/features/societies"
	eventstore "github.com/campushub/campushub/internal/app/store/events"
	followstore "github.com/campushub/campushub/internal/app/store/follows"
	registrationstore "github.com/campushub/campushub/internal/app/store/registrations"
	societystore "github.com/campushub/campushub/internal/app/store/societies"
	userstore "github.com/campushub/campushub/internal/app/store/users"
	"github.com/campushub/campushub/internal/app/system/credentials"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// CampusHub mounts the JSON API at the top level (the route names are a
// frontend contract), the health endpoint for load balancers, and the
// bundled single-page frontend as the catch-all.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	scheme, err := credentials.ForName(appCfg.AuthScheme)
	if err != nil {
		logger.Error("credential scheme init failed", zap.Error(err))
		return nil, err
	}

	users := userstore.New(deps.MongoDatabase)
	societies := societystore.New(deps.MongoDatabase)
	events := eventstore.New(deps.MongoDatabase)
	follows := followstore.New(deps.MongoDatabase)
	regs := registrationstore.New(deps.MongoDatabase)

	r := chi.NewRouter()

	// The frontend may be served from a different origin during development,
	// so the API answers cross-origin requests from anywhere.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Account endpoints
	registerfeature.MountRoutes(r, registerfeature.NewHandler(users, scheme, appCfg.DefaultRole, logger))
	loginfeature.MountRoutes(r, loginfeature.NewHandler(users, scheme, appCfg.AllowedEmailDomain, appCfg.DefaultRole, logger))

	// Directory endpoints
	societiesfeature.MountRoutes(r, societiesfeature.NewHandler(societies, logger))
	eventsfeature.MountRoutes(r, eventsfeature.NewHandler(events, logger))
	followsfeature.MountRoutes(r, followsfeature.NewHandler(follows, logger))
	registrationsfeature.MountRoutes(r, registrationsfeature.NewHandler(regs, logger))

	// Frontend bundle: hashed assets with pre-compressed file support, then
	// the SPA catch-all for everything the API did not claim.
	if appCfg.FrontendDist != "" {
		r.Handle("/assets/*", fileserver.Handler("/assets", appCfg.FrontendDist+"/assets"))
	}
	homeHandler := homefeature.NewHandler(appCfg.FrontendDist, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	return r, nil
}
