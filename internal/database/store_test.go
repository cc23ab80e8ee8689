package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "petfeed.db"),
	}

	store, db, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, db)
	defer store.Close(context.Background())

	assert.Equal(t, config.DriverSQLite, store.Driver)
	assert.NoError(t, store.Ping(context.Background()))
	for _, table := range []string{"users", "foods", "pets", "system_logs"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestOpen_Memory(t *testing.T) {
	store, db, err := Open(context.Background(), &config.Config{DBDriver: config.DriverMemory})
	require.NoError(t, err)
	assert.Nil(t, db)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestConnect_RejectsNonSQLDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: config.DriverMongo})
	assert.Error(t, err)
}
