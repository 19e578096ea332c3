package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Fallback credentials for the admin bootstrap script.
// They exist so a fresh database can be bootstrapped locally; production
// deployments are expected to set ADMIN_EMAIL and ADMIN_PASSWORD.
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "admin123"
	DefaultAdminName     = "Admin"
)

// AdminConfig is read by cmd/seed-admin from unprefixed ADMIN_* env vars.
type AdminConfig struct {
	Email    string `koanf:"email"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`

	// Defaulted lists the credential keys ("email", "password") that fell back
	// to the built-in defaults. The name fallback is not reported.
	Defaulted []string `koanf:"-"`
}

// UsesDefaultCredentials reports whether email or password fell back to a default.
func (a AdminConfig) UsesDefaultCredentials() bool {
	return len(a.Defaulted) > 0
}

// LoadAdminConfig reads ADMIN_EMAIL, ADMIN_PASSWORD and ADMIN_NAME and fills in the fallbacks.
func LoadAdminConfig() (AdminConfig, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("ADMIN_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ADMIN_"))
	}), nil)
	if err != nil {
		return AdminConfig{}, fmt.Errorf("could not load admin env variables: %w", err)
	}

	var cfg AdminConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return AdminConfig{}, fmt.Errorf("could not unmarshal admin config: %w", err)
	}

	cfg.Email = strings.TrimSpace(cfg.Email)
	if cfg.Email == "" {
		cfg.Email = DefaultAdminEmail
		cfg.Defaulted = append(cfg.Defaulted, "email")
	}
	if cfg.Password == "" {
		cfg.Password = DefaultAdminPassword
		cfg.Defaulted = append(cfg.Defaulted, "password")
	}
	if strings.TrimSpace(cfg.Name) == "" {
		cfg.Name = DefaultAdminName
	}

	return cfg, nil
}
