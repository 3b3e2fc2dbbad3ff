package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
api:
  port: "9090"
  jwt_signing_key: "file-key"
  jwt_expiration: 2h
  timezone: Africa/Lagos
storage:
  driver: s3
  s3:
    bucket: photos
`)

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", conf.API.Port)
	assert.Equal(t, "file-key", conf.API.JWTSigningKey)
	assert.Equal(t, 2*time.Hour, conf.API.JWTExpiration)
	assert.Equal(t, "Africa/Lagos", conf.API.Location().String())
	assert.Equal(t, StorageS3, conf.Storage.Driver)
	assert.Equal(t, "photos", conf.Storage.S3.Bucket)
	assert.Equal(t, "us-east-1", conf.Storage.S3.Region)
	assert.Equal(t, "5432", conf.Postgres.Port)
	assert.True(t, conf.RateLimit.Enabled)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
api:
  jwt_signing_key: "file-key"
`)
	t.Setenv("API_JWT_SIGNING_KEY", "env-key")
	t.Setenv("POSTGRES_HOST", "db.internal")

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", conf.API.JWTSigningKey)
	assert.Equal(t, "db.internal", conf.Postgres.Host)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("API_JWT_SIGNING_KEY", "env-key")

	conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", conf.API.Port)
	assert.Equal(t, StorageLocal, conf.Storage.Driver)
	assert.Equal(t, time.UTC, conf.API.Location())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing signing key",
			body: `
api:
  jwt_signing_key: ""
`,
		},
		{
			name: "unknown timezone",
			body: `
api:
  jwt_signing_key: "k"
  timezone: Mars/Olympus
`,
		},
		{
			name: "unknown storage driver",
			body: `
api:
  jwt_signing_key: "k"
storage:
  driver: ftp
`,
		},
		{
			name: "s3 without bucket",
			body: `
api:
  jwt_signing_key: "k"
storage:
  driver: s3
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
