package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTer(now time.Time) *JWTer {
	return &JWTer{
		Secret: []byte("test-secret"),
		Issuer: "shuttle-checkin",
		TTL:    time.Hour,
		Now:    func() time.Time { return now },
	}
}

func TestIssueAndParse(t *testing.T) {
	now := time.Now()
	j := newJWTer(now)

	tok, exp, err := j.Issue(7, "subscriber", "sid-1")
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), exp, time.Second)

	c, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.UID)
	assert.Equal(t, "subscriber", c.Role)
	assert.Equal(t, "sid-1", c.SessionID())
}

func TestParseRejects(t *testing.T) {
	now := time.Now()
	j := newJWTer(now)
	tok, _, err := j.Issue(1, "admin", "sid")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := newJWTer(now)
		other.Secret = []byte("other")
		_, err := other.Parse(tok)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := newJWTer(now)
		other.Issuer = "someone-else"
		_, err := other.Parse(tok)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		later := newJWTer(now.Add(2 * time.Hour))
		_, err := later.Parse(tok)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := j.Parse("not-a-jwt")
		assert.Error(t, err)
	})

	t.Run("missing session id", func(t *testing.T) {
		noSID, _, err := j.Issue(1, "admin", "")
		require.NoError(t, err)
		_, err = j.Parse(noSID)
		assert.Error(t, err)
	})
}
