package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectIssuer_ValueIsSubject(t *testing.T) {
	issuer := NewSubjectIssuer()

	value, err := issuer.Issue(context.Background(), "sub-1")
	require.NoError(t, err)
	assert.Equal(t, "sub-1", value)

	assert.NoError(t, issuer.Revoke(context.Background(), value))
}

func TestSignedIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewSignedIssuer("test-signing-key", 8*time.Hour)
	require.NoError(t, err)

	value, err := issuer.Issue(context.Background(), "sub-1")
	require.NoError(t, err)
	assert.NotEqual(t, "sub-1", value, "signed value must not be the bare subject")

	sub, err := issuer.Subject(value)
	require.NoError(t, err)
	assert.Equal(t, "sub-1", sub)
}

func TestSignedIssuer_ExpiryClaim(t *testing.T) {
	issuer, err := NewSignedIssuer("test-signing-key", time.Hour)
	require.NoError(t, err)

	value, err := issuer.Issue(context.Background(), "sub-1")
	require.NoError(t, err)

	token, err := jwt.Parse(value, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-signing-key"), nil
	})
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
}

func TestSignedIssuer_RejectsTamperedToken(t *testing.T) {
	issuer, err := NewSignedIssuer("test-signing-key", time.Hour)
	require.NoError(t, err)

	other, err := NewSignedIssuer("different-key", time.Hour)
	require.NoError(t, err)

	value, err := other.Issue(context.Background(), "sub-1")
	require.NoError(t, err)

	_, err = issuer.Subject(value)
	assert.Error(t, err)
}

func TestSignedIssuer_RequiresKey(t *testing.T) {
	_, err := NewSignedIssuer("", time.Hour)
	assert.Error(t, err)
}
