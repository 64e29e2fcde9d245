package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueParse(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour, 0)
	require.NoError(t, err)

	id := uuid.New()
	tok, err := m.Issue(id, "MANAGER")
	require.NoError(t, err)

	gotID, role, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, "MANAGER", role)
}

func TestManager_Rejects(t *testing.T) {
	m, _ := NewManager("test-secret", time.Hour, 0)
	other, _ := NewManager("other-secret", time.Hour, 0)
	id := uuid.New()

	foreign, _ := other.Issue(id, "ADMIN")
	_, _, err := m.Parse(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// expired
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _ := m.Issue(id, "ADMIN")
	m.now = time.Now
	_, _, err = m.Parse(old)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// none algorithm
	unsigned, _ := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: id.String(), Role: "ADMIN"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, _, err = m.Parse(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_NoExpiry(t *testing.T) {
	m, _ := NewManager("test-secret", 0, 0)
	tok, err := m.Issue(uuid.New(), "USER")
	require.NoError(t, err)

	claims, err := m.parse(tok)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestManager_ResetTokens(t *testing.T) {
	m, _ := NewManager("test-secret", time.Hour, 15*time.Minute)
	id := uuid.New()

	reset, err := m.IssueReset(id)
	require.NoError(t, err)

	got, err := m.ParseReset(reset)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	// a reset token is not a session and vice versa
	_, _, err = m.Parse(reset)
	assert.ErrorIs(t, err, ErrInvalidToken)

	session, _ := m.Issue(id, "ADMIN")
	_, err = m.ParseReset(session)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewManager_EmptySecret(t *testing.T) {
	_, err := NewManager("", time.Hour, 0)
	assert.Error(t, err)
}
