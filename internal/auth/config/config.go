package config

import (
	"errors"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Session modes supported by the issuer.
const (
	SessionModeSubject = "subject"
	SessionModeSigned  = "signed"
	SessionModeRedis   = "redis"
)

// Config holds all configuration for the auth module.
type Config struct {
	// Google verification
	// GoogleClientID, when set, is enforced against the token's audience claim.
	GoogleClientID string `env:"GOOGLE_CLIENT_ID" envDefault:""`
	// TokenInfoURL is the external verification endpoint. Overridable for tests.
	TokenInfoURL  string        `env:"GOOGLE_TOKENINFO_URL" envDefault:"https://oauth2.googleapis.com/tokeninfo"`
	VerifyTimeout time.Duration `env:"VERIFY_TIMEOUT" envDefault:"8s"`

	// Cookie Configuration
	CookieName     string `env:"COOKIE_NAME" envDefault:"ecoshopper_session"`
	CookiePath     string `env:"COOKIE_PATH" envDefault:"/"`
	CookieDomain   string `env:"COOKIE_DOMAIN" envDefault:""`
	CookieMaxAge   int    `env:"COOKIE_MAX_AGE" envDefault:"28800"` // 8 hours
	CookieSecure   bool   `env:"COOKIE_SECURE" envDefault:"true"`
	CookieHTTPOnly bool   `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	CookieSameSite string `env:"COOKIE_SAME_SITE" envDefault:"Lax"` // "Lax", "Strict", "None"

	// Session issuance
	SessionMode       string `env:"SESSION_MODE" envDefault:"subject"` // "subject", "signed", "redis"
	SessionSigningKey string `env:"SESSION_SIGNING_KEY" envDefault:""`
	RedisAddr         string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load auth configuration from environment: " + err.Error())
	}

	switch strings.ToLower(cfg.CookieSameSite) {
	case "lax":
		cfg.CookieSameSite = "Lax"
	case "strict":
		cfg.CookieSameSite = "Strict"
	case "none":
		cfg.CookieSameSite = "None"
	default:
		return nil, errors.New("cookie_same_site must be one of 'Lax', 'Strict', or 'None'")
	}

	switch cfg.SessionMode {
	case SessionModeSubject, SessionModeRedis:
	case SessionModeSigned:
		if cfg.SessionSigningKey == "" {
			return nil, errors.New("session_signing_key is required for signed session mode")
		}
	default:
		return nil, errors.New("session_mode must be one of 'subject', 'signed', or 'redis'")
	}

	if cfg.VerifyTimeout <= 0 {
		cfg.VerifyTimeout = 8 * time.Second
	}

	return cfg, nil
}
