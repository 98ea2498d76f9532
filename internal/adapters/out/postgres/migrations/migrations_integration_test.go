package migrations_test

import (
	"context"
	"testing"

	"orders/internal/adapters/out/postgres/migrations"
	"orders/internal/adapters/out/postgres/pgtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	direction, err := migrations.ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, migrations.Down, direction)

	_, err = migrations.ParseDirection("sideways")
	require.Error(t, err)
}

func TestRun_DownAndUpAgain(t *testing.T) {
	ctx := context.Background()
	database, err := pgtest.Start(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Terminate(context.Background()) })

	sqlDB, err := migrations.Open(database.DSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrations.Run(sqlDB, migrations.Up), "up on a migrated schema is a no-op")

	for _, table := range []string{"orders", "order_items", "outbox_messages"} {
		assert.True(t, database.DB.Migrator().HasTable(table), table)
	}

	require.NoError(t, migrations.Run(sqlDB, migrations.Down))
	assert.False(t, database.DB.Migrator().HasTable("orders"))

	require.NoError(t, migrations.Run(sqlDB, migrations.Up))
	assert.True(t, database.DB.Migrator().HasTable("orders"))
}
