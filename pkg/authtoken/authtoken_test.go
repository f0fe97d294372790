package authtoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("secret", time.Hour, "salon")

	token, exp, err := m.Issue(42, "STAFF")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "STAFF", claims.Role)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestManager_RejectsForeignSignature(t *testing.T) {
	token, _, err := NewManager("one", time.Hour, "salon").Issue(1, "ADMIN")
	require.NoError(t, err)

	_, err = NewManager("two", time.Hour, "salon").Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_RejectsExpired(t *testing.T) {
	m := NewManager("secret", time.Minute, "salon")
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := m.Issue(1, "CUSTOMER")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestManager_RejectsGarbage(t *testing.T) {
	_, err := NewManager("secret", time.Hour, "salon").Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
