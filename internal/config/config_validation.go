package config

import "time"

const (
	defaultHTTPAddress    = "0.0.0.0:8000"
	defaultRequestTimeout = 30 * time.Second
	defaultSessionTTL     = 7 * 24 * time.Hour
	defaultSessionCookie  = "__sid"
)

// applyDefaults fills in defaults for optional fields left unset by every
// configuration source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Auth.SessionTTL == 0 {
		cfg.Auth.SessionTTL = defaultSessionTTL
	}
	if cfg.Auth.SessionCookie == "" {
		cfg.Auth.SessionCookie = defaultSessionCookie
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the server depends on at startup.
//
// Returns nil if the configuration is valid, or a descriptive sentinel error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.GoogleClientID == "" || cfg.Auth.AllowedDomain == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}
