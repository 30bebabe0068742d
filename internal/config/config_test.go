package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
api:
  environment: development
  port: "9000"
  allowed_cors_domains:
    - "http://localhost:5173"
log:
  level: info
store:
  driver: file
  dir: ./data
postgres:
  host: localhost
  user: eventhub
  password: secret
  db: eventhub
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, sample), nil)
	require.NoError(t, err)

	assert.Equal(t, "9000", conf.API.Port)
	assert.Equal(t, "127.0.0.1", conf.API.Host)
	assert.Equal(t, []string{"http://localhost:5173"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, StoreDriverFile, conf.Store.Driver)
	assert.Equal(t, "release", conf.Gin.Mode)
	assert.Equal(t, "host=localhost port=5432 user=eventhub password=secret dbname=eventhub sslmode=disable", conf.Postgres.DSN())
}

func TestLoad_EnvAndFlagsOverride(t *testing.T) {
	t.Setenv("EVENTHUB_LOG_LEVEL", "debug")

	flags := Flags()
	require.NoError(t, flags.Parse([]string{"--store.driver=memory", "--api.port=7000"}))

	conf, err := Load(writeConfig(t, sample), flags)
	require.NoError(t, err)

	assert.Equal(t, "debug", conf.Log.Level)
	assert.Equal(t, StoreDriverMemory, conf.Store.Driver)
	assert.Equal(t, "7000", conf.API.Port)
	// Unset flags keep the file value.
	assert.Equal(t, "./data", conf.Store.Dir)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"), nil)
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "store:\n  driver: sqlite\n"), nil)
	assert.ErrorIs(t, err, errUnknownStoreDriver)
}

func TestWatch(t *testing.T) {
	path := writeConfig(t, sample)
	conf, err := Load(path, nil)
	require.NoError(t, err)

	changed := make(chan *AppConfig, 1)
	conf.Watch(func(next *AppConfig) {
		select {
		case changed <- next:
		default:
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644))

	select {
	case next := <-changed:
		assert.Equal(t, "warn", next.Log.Level)
	case <-time.After(5 * time.Second):
		t.Fatal("config change not observed")
	}
}
