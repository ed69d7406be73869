package auth

import (
	"fmt"
	"time"

	authhttp "ecoshopper-backend/internal/auth/adapter/http"
	"ecoshopper-backend/internal/auth/config"
	"ecoshopper-backend/internal/auth/session"
	"ecoshopper-backend/internal/auth/usecase"
	"ecoshopper-backend/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// AuthModule represents the complete authentication module
type AuthModule struct {
	usecase usecase.VerifyUsecase
	issuer  session.Issuer
	handler *authhttp.AuthHTTPHandler
	config  *config.Config
}

// NewAuthModule creates a new authentication module instance
func NewAuthModule(cfg *config.Config, log logger.Logger) (*AuthModule, error) {
	verifier := usecase.NewVerifyUsecase(
		cfg.TokenInfoURL,
		cfg.GoogleClientID,
		cfg.VerifyTimeout,
		log.WithComponent("auth"),
	)

	issuer, err := newIssuer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create session issuer: %w", err)
	}

	handler := authhttp.NewAuthHTTPHandler(
		verifier,
		issuer,
		cfg.CookieName,
		cfg.CookiePath,
		cfg.CookieDomain,
		cfg.CookieMaxAge,
		cfg.CookieSecure,
		cfg.CookieHTTPOnly,
		cfg.CookieSameSite,
	)

	return &AuthModule{
		usecase: verifier,
		issuer:  issuer,
		handler: handler,
		config:  cfg,
	}, nil
}

// newIssuer selects the session issuer for the configured mode.
func newIssuer(cfg *config.Config) (session.Issuer, error) {
	ttl := time.Duration(cfg.CookieMaxAge) * time.Second

	switch cfg.SessionMode {
	case config.SessionModeSigned:
		return session.NewSignedIssuer(cfg.SessionSigningKey, ttl)
	case config.SessionModeRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return session.NewRedisIssuer(client, ttl), nil
	default:
		return session.NewSubjectIssuer(), nil
	}
}

// RegisterRoutes registers authentication routes with the provided router
func (am *AuthModule) RegisterRoutes(router fiber.Router) {
	am.handler.SetupAuthRoutes(router)
}

// GetUsecase returns the verify usecase for external access
func (am *AuthModule) GetUsecase() usecase.VerifyUsecase {
	return am.usecase
}
