package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Behavior(t *testing.T) {
	err := NewValidationError("invalid barcode").WithCode("SCAN001").WithDetail("field", "code").WithComponent("scan")
	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, "invalid barcode", err.Message)
	assert.Equal(t, "SCAN001", err.Code)
	assert.Equal(t, "scan", err.Component)
	assert.Equal(t, "code", err.Details["field"])
	assert.Equal(t, "invalid barcode", err.Error())
}

func TestAppError_WithCause_Unwrap(t *testing.T) {
	cause := ErrStoreUnavailable
	err := NewInfrastructureError("insert failed").WithCause(cause)
	assert.Equal(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "store unavailable")
}

func TestTaxonomyHelpers(t *testing.T) {
	assert.True(t, IsValidation(ErrInvalidBarcode))
	assert.True(t, IsValidation(ErrMissingToken))
	assert.True(t, IsValidation(NewValidationError("bad")))

	assert.True(t, IsStoreUnavailable(ErrStoreUnavailable))
	assert.True(t, IsStoreUnavailable(fmt.Errorf("%w: dial tcp", ErrStoreUnavailable)))
	assert.True(t, IsStoreUnavailable(NewInfrastructureError("down")))

	assert.True(t, IsAuthentication(ErrInvalidToken))
	assert.True(t, IsAuthentication(ErrAudienceMismatch))
	assert.False(t, IsAuthentication(ErrInvalidBarcode))

	assert.True(t, IsGatewayTimeout(ErrVerificationTimeout))
	assert.True(t, IsGatewayTimeout(NewGatewayTimeoutError("slow upstream")))
	assert.False(t, IsGatewayTimeout(ErrVerificationFailed))
}

func TestWrapError_PreservesAppError(t *testing.T) {
	orig := NewAuthenticationError("invalid token")
	assert.Same(t, orig, WrapError(orig, "ignored"))

	wrapped := WrapError(ErrVerificationFailed, "verification failed")
	assert.Equal(t, ErrorTypeInternal, wrapped.Type)
	assert.Equal(t, ErrVerificationFailed, wrapped.Unwrap())
}
