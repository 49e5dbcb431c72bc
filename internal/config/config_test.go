package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	LoadConfig()
	cfg := GetConfig()

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "realestate", cfg.Mongo.Database)
	assert.Equal(t, "Properties", cfg.Mongo.Collections.Properties)
	assert.Equal(t, "PropertyImages", cfg.Mongo.Collections.PropertyImages)
}

func TestLoadConfig_YamlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 8081
  env: production
mongo:
  uri: mongodb://db:27017
  database: listings
  collections:
    properties: Props
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("CONFIG_PATH", path)

	LoadConfig()
	cfg := GetConfig()

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, "listings", cfg.Mongo.Database)
	assert.Equal(t, "Props", cfg.Mongo.Collections.Properties)
	assert.Equal(t, "Owners", cfg.Mongo.Collections.Owners, "unset collections keep their defaults")
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8081\n"), 0o644))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("MONGO_URI", "mongodb://override:27017")
	t.Setenv("MONGO_DB", "override_db")

	LoadConfig()
	cfg := GetConfig()

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "mongodb://override:27017", cfg.Mongo.URI)
	assert.Equal(t, "override_db", cfg.Mongo.Database)
}
