package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestReadMissingFileUsesDefaults(t *testing.T) {
	c, err := Read(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, c.HTTP.Port)
	assert.Equal(t, "memory", c.Session.Driver)
	assert.Equal(t, "sid", c.Session.CookieName)
	assert.Equal(t, "admin@example.com", c.Seed.AdminEmail)
	assert.True(t, c.Seed.Enabled)
	assert.Equal(t, 1<<15, c.Credential.N)
	assert.Equal(t, []string{"*"}, c.HTTP.CORSOrigins)
}

func TestReadFileOverridesDefaults(t *testing.T) {
	p := writeConfig(t, `
http:
  port: 9090
  maxConcurrency: 10
log:
  level: debug
  json: true
session:
  driver: redis
redis:
  addr: redis:6379
  db: 2
seed:
  adminEmail: root@shuttle.local
`)
	c, err := Read(p)
	require.NoError(t, err)

	assert.Equal(t, 9090, c.HTTP.Port)
	assert.Equal(t, int64(10), c.HTTP.MaxConcurrency)
	assert.Equal(t, "debug", c.Log.Level)
	assert.True(t, c.Log.JSON)
	assert.Equal(t, "redis", c.Session.Driver)
	assert.Equal(t, "redis:6379", c.Redis.Addr)
	assert.Equal(t, 2, c.Redis.DB)
	assert.Equal(t, "root@shuttle.local", c.Seed.AdminEmail)
	assert.Equal(t, "admin123", c.Seed.AdminPassword)
}

func TestReadEnvOverridesFile(t *testing.T) {
	p := writeConfig(t, "http:\n  port: 9090\n")
	t.Setenv("APP_HTTP_PORT", "7070")
	t.Setenv("APP_JWT_SECRET", "from-env")

	c, err := Read(p)
	require.NoError(t, err)
	assert.Equal(t, 7070, c.HTTP.Port)
	assert.Equal(t, "from-env", c.JWT.Secret)
}

func TestReadRejects(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Read(writeConfig(t, "http: [unterminated"))
		assert.Error(t, err)
	})
	t.Run("unknown session driver", func(t *testing.T) {
		_, err := Read(writeConfig(t, "session:\n  driver: memcached\n"))
		assert.Error(t, err)
	})
}

func TestReadWithoutFile(t *testing.T) {
	c, err := Read("")
	require.NoError(t, err)
	assert.Equal(t, "shuttle-checkin", c.App.Name)
}

func TestPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, "./configs/config.local.yaml", Path(""))
	assert.Equal(t, "x.yaml", Path("x.yaml"))
	t.Setenv("CONFIG_PATH", "/etc/shuttle.yaml")
	assert.Equal(t, "/etc/shuttle.yaml", Path(""))
}
