package services

import (
	"testing"
	"time"

	"snakescores/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the schema migrated.
// TranslateError is on so integrity violations surface the same way they
// do against postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see its own empty :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Gamer{}, &models.Score{}, &models.AdminUser{}))
	return db
}

func timeDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func mustGamer(t *testing.T, name, uid string) *models.Gamer {
	t.Helper()
	g, err := models.NewGamer(name, uid, models.DefaultLevel, models.DefaultPassword, timeDate(2000, time.January, 1))
	require.NoError(t, err)
	return g
}
