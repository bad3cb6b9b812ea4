package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fsdevblog/qrshort/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		svc, err := Factory(db.NewMemStorage(), ServiceTypeInMemory, Params{})
		require.NoError(t, err)
		assert.NotNil(t, svc.Shortener)
		assert.NotNil(t, svc.Redirect)
		assert.NotNil(t, svc.Stats)
		require.NoError(t, svc.Ping.CheckConnection(context.Background()))
	})

	t.Run("sqlite", func(t *testing.T) {
		conn, err := db.NewSQLite(filepath.Join(t.TempDir(), "factory.sqlite"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close(context.Background(), conn) })

		svc, err := Factory(conn, ServiceTypeSQLite, Params{})
		require.NoError(t, err)
		require.NoError(t, svc.Ping.CheckConnection(context.Background()))

		link, err := svc.Shortener.Shorten(context.Background(), "example.com")
		require.NoError(t, err)
		target, err := svc.Redirect.Resolve(context.Background(), link.ShortCode, Visit{})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", target)
	})

	t.Run("wrong connection type", func(t *testing.T) {
		for _, st := range []ServiceType{
			ServiceTypeInMemory, ServiceTypeSQLite, ServiceTypePostgres, ServiceTypeRedis, ServiceTypeMongo,
		} {
			_, err := Factory("not a connection", st, Params{})
			require.Error(t, err, st)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Factory(db.NewMemStorage(), "cassandra", Params{})
		require.Error(t, err)
	})
}
