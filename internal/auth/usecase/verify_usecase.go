package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"ecoshopper-backend/internal/auth/domain/model"
	apperrors "ecoshopper-backend/internal/shared/errors"
	"ecoshopper-backend/internal/shared/logger"
)

// VerifyUsecase defines the token-verification operation.
type VerifyUsecase interface {
	// VerifyGoogleToken forwards the ID token to the external verification
	// endpoint and returns the extracted profile.
	VerifyGoogleToken(ctx context.Context, idToken string) (*model.GoogleProfile, error)
}

// tokenClaims is the subset of the tokeninfo response this service reads.
// Unknown fields are ignored.
type tokenClaims struct {
	Aud       string `json:"aud"`
	Sub       string `json:"sub"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	GivenName string `json:"given_name"`
	Picture   string `json:"picture"`
}

type verifyUsecaseImpl struct {
	client   *http.Client
	endpoint string
	audience string
	log      logger.Logger
}

// NewVerifyUsecase creates a verifier forwarding tokens to endpoint. When
// audience is non-empty it is enforced against the token's aud claim. The
// timeout bounds the whole verification round trip.
func NewVerifyUsecase(endpoint, audience string, timeout time.Duration, log logger.Logger) VerifyUsecase {
	return &verifyUsecaseImpl{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		audience: audience,
		log:      log,
	}
}

// VerifyGoogleToken verifies the token remotely. Each call is stateless and
// independent; no token cache or session record is consulted.
func (uc *verifyUsecaseImpl) VerifyGoogleToken(ctx context.Context, idToken string) (*model.GoogleProfile, error) {
	if idToken == "" {
		return nil, apperrors.ErrMissingToken
	}

	verifyURL := uc.endpoint + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, verifyURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrVerificationFailed, err)
	}

	resp, err := uc.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			uc.log.WithContext(ctx).Warn("Token verification timed out")
			return nil, apperrors.ErrVerificationTimeout
		}
		uc.log.WithContext(ctx).Errorf("Token verification transport failure: %v", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrVerificationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.ErrInvalidToken
	}

	var claims tokenClaims
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, fmt.Errorf("%w: decode claims: %v", apperrors.ErrVerificationFailed, err)
	}

	if uc.audience != "" && claims.Aud != uc.audience {
		uc.log.WithContext(ctx).Warn("Token audience mismatch")
		return nil, apperrors.ErrAudienceMismatch
	}

	name := claims.Name
	if name == "" {
		name = claims.GivenName
	}
	if name == "" {
		name = "User"
	}

	return &model.GoogleProfile{
		Email:   claims.Email,
		Name:    name,
		Picture: claims.Picture,
		Sub:     claims.Sub,
	}, nil
}

// isTimeout reports whether the transport error is timeout-class, either from
// the client's own deadline or from context expiry.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
