package services

import (
	"testing"

	"snakescores/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSampleData(t *testing.T) {
	db := setupTestDB(t)

	SeedSampleData(db)

	var gamers []models.Gamer
	require.NoError(t, db.Preload("Scores").Find(&gamers).Error)
	require.Len(t, gamers, 5)

	uids := make(map[string]models.Gamer, len(gamers))
	for _, g := range gamers {
		uids[g.UID] = g
		assert.GreaterOrEqual(t, len(g.Scores), 1)
		assert.LessOrEqual(t, len(g.Scores), 3)
	}

	toby, ok := uids["toby"]
	require.True(t, ok)
	assert.Equal(t, "Thomas Edison", toby.Name)
	assert.Equal(t, "1847-02-11", toby.DOB.Format("2006-01-02"))
	assert.True(t, toby.CheckPassword("123toby"))

	var admins []models.AdminUser
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin", admins[0].UID)
}

func TestSeedSampleDataTwiceDoesNotDuplicate(t *testing.T) {
	db := setupTestDB(t)

	SeedSampleData(db)
	// A second pass hits the uniqueness constraint on every handle; each
	// rejection is logged and skipped rather than aborting the run.
	SeedSampleData(db)

	var gamerCount, adminCount, scoreCount int64
	require.NoError(t, db.Model(&models.Gamer{}).Count(&gamerCount).Error)
	require.NoError(t, db.Model(&models.AdminUser{}).Count(&adminCount).Error)
	require.NoError(t, db.Model(&models.Score{}).Count(&scoreCount).Error)

	assert.Equal(t, int64(5), gamerCount)
	assert.Equal(t, int64(1), adminCount)
	assert.LessOrEqual(t, scoreCount, int64(15))
	assert.GreaterOrEqual(t, scoreCount, int64(5))
}

func TestSeedContinuesPastCollisions(t *testing.T) {
	db := setupTestDB(t)

	// Pre-claim one sample handle so that insert fails mid-run.
	squatter := mustGamer(t, "Squatter", "niko")
	require.NoError(t, NewGamerService(db).Create(squatter))

	SeedSampleData(db)

	var gamerCount int64
	require.NoError(t, db.Model(&models.Gamer{}).Count(&gamerCount).Error)
	assert.Equal(t, int64(5), gamerCount)

	// The squatter kept the handle; the remaining samples all landed.
	var niko models.Gamer
	require.NoError(t, db.Where("uid = ?", "niko").First(&niko).Error)
	assert.Equal(t, "Squatter", niko.Name)

	var admins int64
	require.NoError(t, db.Model(&models.AdminUser{}).Count(&admins).Error)
	assert.Equal(t, int64(1), admins)
}
