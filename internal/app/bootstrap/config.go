// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/campushub/campushub/internal/app/system/credentials"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for CampusHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, allowed_email_domain, etc.
//   - Environment variables: CAMPUSHUB_MONGO_URI, CAMPUSHUB_AUTH_SCHEME, etc.
//   - Command-line flags: --mongo_uri, --auth_scheme, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "campus_hub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Account policy
	{Name: "allowed_email_domain", Default: "@college.edu", Desc: "Email suffix required at login"},
	{Name: "auth_scheme", Default: "plaintext", Desc: "Credential scheme: 'plaintext' or 'bcrypt'"},
	{Name: "default_role", Default: "student", Desc: "Role assigned when registration omits one"},

	// Frontend bundle
	{Name: "frontend_dist", Default: "frontend/dist", Desc: "Path to the built frontend (blank runs API-only)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CAMPUSHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AllowedEmailDomain: appValues.String("allowed_email_domain"),
		AuthScheme:         appValues.String("auth_scheme"),
		DefaultRole:        appValues.String("default_role"),

		FrontendDist: appValues.String("frontend_dist"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// CampusHub validates the MongoDB URI format, the credential scheme name,
// and the email-domain suffix to catch configuration errors early, before
// attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if _, err := credentials.ForName(appCfg.AuthScheme); err != nil {
		logger.Error("invalid auth scheme", zap.Error(err))
		return fmt.Errorf("invalid auth scheme: %w", err)
	}

	if appCfg.AllowedEmailDomain != "" && !strings.HasPrefix(appCfg.AllowedEmailDomain, "@") {
		return fmt.Errorf("allowed_email_domain must start with '@', got %q", appCfg.AllowedEmailDomain)
	}

	return nil
}
