package http

import (
	"errors"
	"time"

	"ecoshopper-backend/internal/auth/session"
	"ecoshopper-backend/internal/auth/usecase"
	apperrors "ecoshopper-backend/internal/shared/errors"
	"ecoshopper-backend/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
)

// fallbackSubject keys the session cookie when the verified token carries no
// sub claim.
const fallbackSubject = "user"

// AuthHTTPHandler handles HTTP requests for authentication
type AuthHTTPHandler struct {
	usecase        usecase.VerifyUsecase
	issuer         session.Issuer
	cookieName     string
	cookiePath     string
	cookieDomain   string
	cookieMaxAge   int
	cookieSecure   bool
	cookieHTTPOnly bool
	cookieSameSite string
}

// NewAuthHTTPHandler creates a new authentication HTTP handler
func NewAuthHTTPHandler(
	uc usecase.VerifyUsecase,
	issuer session.Issuer,
	cookieName, cookiePath, cookieDomain string,
	cookieMaxAge int,
	cookieSecure, cookieHTTPOnly bool,
	cookieSameSite string,
) *AuthHTTPHandler {
	return &AuthHTTPHandler{
		usecase:        uc,
		issuer:         issuer,
		cookieName:     cookieName,
		cookiePath:     cookiePath,
		cookieDomain:   cookieDomain,
		cookieMaxAge:   cookieMaxAge,
		cookieSecure:   cookieSecure,
		cookieHTTPOnly: cookieHTTPOnly,
		cookieSameSite: cookieSameSite,
	}
}

// SetupAuthRoutes sets up authentication routes
func (h *AuthHTTPHandler) SetupAuthRoutes(router fiber.Router) {
	auth := router.Group("/auth")
	auth.Post("/google/verify", h.VerifyGoogle)
	auth.Post("/logout", h.Logout)
}

// VerifyGoogle verifies a Google ID token and issues the session cookie
func (h *AuthHTTPHandler) VerifyGoogle(c *fiber.Ctx) error {
	var req struct {
		IDToken string `json:"idToken"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing token",
		})
	}

	profile, err := h.usecase.VerifyGoogleToken(c.UserContext(), req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMissingToken):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Missing token",
			})
		case errors.Is(err, apperrors.ErrInvalidToken):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		case errors.Is(err, apperrors.ErrAudienceMismatch):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Audience mismatch",
			})
		case errors.Is(err, apperrors.ErrVerificationTimeout):
			return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
				"error": "Verification timed out",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Verification failed",
			})
		}
	}

	sub := profile.Sub
	if sub == "" {
		sub = fallbackSubject
	}
	// Carry the verified subject so issuer and logger see who this request is for.
	ctx := utils.WithSubject(c.UserContext(), sub)
	c.SetUserContext(ctx)
	value, err := h.issuer.Issue(ctx, sub)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to issue session",
		})
	}
	h.setCookie(c, value)

	return c.JSON(fiber.Map{
		"ok":      true,
		"profile": profile,
	})
}

// Logout revokes any server-side session state and clears the cookie
func (h *AuthHTTPHandler) Logout(c *fiber.Ctx) error {
	if value := c.Cookies(h.cookieName); value != "" {
		if err := h.issuer.Revoke(c.UserContext(), value); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to revoke session",
			})
		}
	}

	h.clearCookie(c)

	return c.JSON(fiber.Map{
		"ok": true,
	})
}

// Helper methods

func (h *AuthHTTPHandler) setCookie(c *fiber.Ctx, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     h.cookiePath,
		Domain:   h.cookieDomain,
		MaxAge:   h.cookieMaxAge,
		Secure:   h.cookieSecure,
		HTTPOnly: h.cookieHTTPOnly,
		SameSite: h.cookieSameSite,
		Expires:  time.Now().Add(time.Duration(h.cookieMaxAge) * time.Second),
	})
}

func (h *AuthHTTPHandler) clearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     h.cookiePath,
		Domain:   h.cookieDomain,
		MaxAge:   -1,
		Secure:   h.cookieSecure,
		HTTPOnly: h.cookieHTTPOnly,
		SameSite: h.cookieSameSite,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
