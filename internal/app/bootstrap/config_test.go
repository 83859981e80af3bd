package bootstrap

import (
	"testing"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:           "mongodb://localhost:27017",
		MongoDatabase:      "campus_hub",
		AllowedEmailDomain: "@college.edu",
		AuthScheme:         "plaintext",
		DefaultRole:        "student",
	}
}

func TestValidateConfig_Accepts(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"defaults", func(c *AppConfig) {}},
		{"bcrypt scheme", func(c *AppConfig) { c.AuthScheme = "bcrypt" }},
		{"blank scheme falls back", func(c *AppConfig) { c.AuthScheme = "" }},
		{"blank domain disables the check", func(c *AppConfig) { c.AllowedEmailDomain = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appCfg := validAppConfig()
			tc.mutate(&appCfg)

			if err := ValidateConfig(&config.CoreConfig{}, appCfg, testLogger()); err != nil {
				t.Errorf("expected config to validate, got %v", err)
			}
		})
	}
}

func TestValidateConfig_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"bad mongo uri", func(c *AppConfig) { c.MongoURI = "http://not-mongo" }},
		{"unknown scheme", func(c *AppConfig) { c.AuthScheme = "md5" }},
		{"domain without @", func(c *AppConfig) { c.AllowedEmailDomain = "college.edu" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appCfg := validAppConfig()
			tc.mutate(&appCfg)

			if err := ValidateConfig(&config.CoreConfig{}, appCfg, testLogger()); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
