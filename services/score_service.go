package services

import (
	"errors"

	"snakescores/models"

	"gorm.io/gorm"
)

// DefaultTopLimit caps the global leaderboard so the response stays
// bounded as the scores table grows.
const DefaultTopLimit = 50

type ScoreService struct {
	db *gorm.DB
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{db: db}
}

// Create persists a new score. An integrity violation leaves no partial
// write and is mapped to a sentinel error; the session stays usable.
func (s *ScoreService) Create(score *models.Score) error {
	if err := s.db.Create(score).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return ErrDuplicate
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return ErrInvalidReference
		}
		return err
	}
	return nil
}

// ListForUser returns the user's scores ordered by score descending then
// date played ascending, so among equal scores the earliest comes first.
// Each call is a fresh query.
func (s *ScoreService) ListForUser(userID uint) ([]models.Score, error) {
	var scores []models.Score
	err := s.db.Where("user_id = ?", userID).
		Order("score DESC").
		Order("dateplayed ASC").
		Find(&scores).Error
	return scores, err
}

// ListAll returns every score across all users, same ordering as
// ListForUser.
func (s *ScoreService) ListAll() ([]models.Score, error) {
	var scores []models.Score
	err := s.db.Order("score DESC").
		Order("dateplayed ASC").
		Find(&scores).Error
	return scores, err
}

// DeleteForUser removes all of the user's scores in one bulk statement,
// for real rather than soft-deleted. Deleting with no matching rows is a
// no-op success.
func (s *ScoreService) DeleteForUser(userID uint) error {
	return s.db.Unscoped().Where("user_id = ?", userID).Delete(&models.Score{}).Error
}

// TopGlobal returns the top scores across all users with the owning gamer
// joined in, capped at limit rows (DefaultTopLimit when limit <= 0).
func (s *ScoreService) TopGlobal(limit int) ([]models.Score, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	var scores []models.Score
	err := s.db.Joins("Gamer").
		Order("scores.score DESC").
		Order("scores.dateplayed ASC").
		Limit(limit).
		Find(&scores).Error
	return scores, err
}

// HighestForUser returns the user's single best score, or nil when the
// user has none.
func (s *ScoreService) HighestForUser(userID uint) (*models.Score, error) {
	var score models.Score
	err := s.db.Where("user_id = ?", userID).
		Order("score DESC").
		Order("dateplayed ASC").
		First(&score).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &score, nil
}
