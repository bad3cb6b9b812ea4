package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	conf, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, defaultServerAddress, conf.ServerAddress)
	assert.Equal(t, "domain.com", conf.BaseDomain)
	assert.Equal(t, StorageTypeInMemory, conf.StorageType())
	assert.Equal(t, 1000, conf.ReadLimit)
	assert.Equal(t, 256, conf.QRSize)
	assert.Equal(t, 10*time.Second, conf.ShutdownTimeout)
	assert.False(t, conf.IsProduction())
}

func TestLoadConfig_FlagsAndEnv(t *testing.T) {
	t.Setenv("BASE_DOMAIN", "sho.rt")
	t.Setenv("READ_LIMIT", "50")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("APP_ENV", "production")

	conf, err := LoadConfig([]string{"-a", ":9090", "-b", "flag.domain", "-s", "SQLite", "-sqlite", "/tmp/x.sqlite"})
	require.NoError(t, err)

	assert.Equal(t, ":9090", conf.ServerAddress)
	// env приоритетнее флагов
	assert.Equal(t, "sho.rt", conf.BaseDomain)
	assert.Equal(t, StorageTypeSQLite, conf.StorageType())
	assert.Equal(t, "/tmp/x.sqlite", conf.SQLitePath)
	assert.Equal(t, 50, conf.ReadLimit)
	assert.Equal(t, 3*time.Second, conf.ShutdownTimeout)
	assert.True(t, conf.IsProduction())
}

func TestConfig_StorageType(t *testing.T) {
	tests := []struct {
		name string
		conf Config
		want StorageType
	}{
		{name: "empty", conf: Config{}, want: StorageTypeInMemory},
		{name: "dsn", conf: Config{DatabaseDSN: "postgres://x", MongoURL: "mongodb://x"}, want: StorageTypePostgres},
		{name: "mongo", conf: Config{MongoURL: "mongodb://x", RedisAddr: "localhost:6379"}, want: StorageTypeMongo},
		{name: "redis", conf: Config{RedisAddr: "localhost:6379"}, want: StorageTypeRedis},
		{name: "explicit", conf: Config{Storage: StorageTypeSQLite, DatabaseDSN: "postgres://x"}, want: StorageTypeSQLite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.conf.StorageType())
		})
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "unknown storage", args: []string{"-s", "cassandra"}},
		{name: "postgres without dsn", env: map[string]string{"STORAGE": "postgres"}},
		{name: "redis without addr", args: []string{"-s", "redis"}},
		{name: "negative limit", env: map[string]string{"READ_LIMIT": "-1"}},
		{name: "blank domain", args: []string{"-b", " "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(tt.args)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := LoadConfig([]string{"-unknown"})
	require.Error(t, err)

	t.Setenv("QR_SIZE", "big")
	_, err = LoadConfig(nil)
	require.Error(t, err)
}
