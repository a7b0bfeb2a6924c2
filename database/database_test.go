package database

import (
	"path/filepath"
	"testing"

	"github.com/lshigami/trivia-api/config"
	"github.com/lshigami/trivia-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectorFor(t *testing.T) {
	d, err := dialectorFor(config.Database{Driver: "postgres", Host: "db", Port: "5432"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	d, err = dialectorFor(config.Database{})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	d, err = dialectorFor(config.Database{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	_, err = dialectorFor(config.Database{Driver: "mysql"})
	assert.Error(t, err)
}

func TestNewDatabaseSQLiteAndMigrate(t *testing.T) {
	cfg := &config.Config{Database: config.Database{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "trivia.db"),
	}}

	db, err := NewDatabase(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable(&model.Question{}))
	assert.True(t, db.Migrator().HasTable(&model.Category{}))

	// Migrating twice is a no-op.
	require.NoError(t, Migrate(db))
}

func TestNewDatabaseUnknownDriver(t *testing.T) {
	_, err := NewDatabase(&config.Config{Database: config.Database{Driver: "oracle"}})
	assert.Error(t, err)
}
