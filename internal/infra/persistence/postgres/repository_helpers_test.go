package postgres

import (
	"io"
	"log/slog"
	"testing"

	"locator/internal/infra/persistence/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second connection would open a second, empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(Models()...))

	return newSession(db, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
}

func seedSharedOptions(t *testing.T, db *gorm.DB, values map[string]string) {
	t.Helper()

	for k, v := range values {
		require.NoError(t, db.Create(&model.SharedOptionModel{OptionKey: k, OptionValue: v}).Error)
	}
}

func seedLocation(t *testing.T, db *gorm.DB, location model.LocationModel, meta map[string]string) {
	t.Helper()

	require.NoError(t, db.Create(&location).Error)
	for k, v := range meta {
		require.NoError(t, db.Create(&model.LocationMetaModel{LocationID: location.ID, MetaKey: k, MetaValue: v}).Error)
	}
}
