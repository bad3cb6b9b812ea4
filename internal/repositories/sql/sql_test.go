package sql

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fsdevblog/qrshort/internal/db"
	"github.com/fsdevblog/qrshort/internal/repositories/repotest"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

func TestSQLiteContract(t *testing.T) {
	dir := t.TempDir()
	var n int
	suite.Run(t, &repotest.ContractSuite{
		NewRepos: func() repotest.Repos {
			n++
			conn, err := db.NewSQLite(filepath.Join(dir, fmt.Sprintf("test%d.sqlite", n)))
			require.NoError(t, err)
			t.Cleanup(func() {
				_ = db.Close(context.Background(), conn)
			})
			return repotest.Repos{
				Links:  NewLinkRepo(conn, zap.NewNop()),
				Clicks: NewClickRepo(conn, zap.NewNop()),
			}
		},
	})
}
