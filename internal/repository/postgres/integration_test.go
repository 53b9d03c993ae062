//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"creon-backend/internal/common/config"
	"creon-backend/internal/domain"
	platformpg "creon-backend/internal/platform/postgres"
	"creon-backend/internal/repository/gatewaytest"
	"creon-backend/internal/repository/postgres"
)

// setupTestContainer starts a disposable PostgreSQL, applies the embedded
// migrations and returns the pool.
func setupTestContainer(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("creon_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(context.Background()))
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Postgres.DSN = dsn
	cfg.Postgres.MaxOpenConns = 20
	cfg.Postgres.MaxIdleConns = 5
	cfg.Postgres.ConnMaxLifetime = time.Minute

	client, err := platformpg.NewClient(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.Migrate())
	return client.GetDB()
}

func TestStoreContract(t *testing.T) {
	db := setupTestContainer(t)

	factory := func(t *testing.T) domain.Gateway {
		_, err := db.Exec(`TRUNCATE user_stats, tips, grant_applications, grants, nfts, token_gated_content, users RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
		return postgres.New(db)
	}
	dropStats := func(t *testing.T, _ domain.Gateway, userID int64) {
		_, err := db.Exec(`DELETE FROM user_stats WHERE user_id = $1`, userID)
		require.NoError(t, err)
	}

	gatewaytest.Run(t, factory, dropStats)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := setupTestContainer(t)
	require.NoError(t, platformpg.NewClientFromDB(db).Migrate())
}
