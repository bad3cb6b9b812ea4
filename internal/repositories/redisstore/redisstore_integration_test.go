//go:build integration

package redisstore

import (
	"context"
	"testing"

	"github.com/fsdevblog/qrshort/internal/db"
	"github.com/fsdevblog/qrshort/internal/repositories/repotest"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestRedisContract(t *testing.T) {
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := db.NewRedisClient(ctx, db.RedisConfig{Addr: endpoint})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	suite.Run(t, &repotest.ContractSuite{
		NewRepos: func() repotest.Repos {
			require.NoError(t, client.FlushDB(ctx).Err())
			return repotest.Repos{
				Links:  NewLinkRepo(client),
				Clicks: NewClickRepo(client),
			}
		},
	})
}
