package models

import (
	"time"

	"gorm.io/gorm"
)

type Score struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Score      int            `json:"score" gorm:"not null"`
	DatePlayed time.Time      `json:"dateplayed" gorm:"column:dateplayed;type:date"`
	UserID     uint           `json:"user_id" gorm:"not null;index"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Gamer Gamer `json:"gamer,omitempty" gorm:"foreignKey:UserID"`
}

func (Score) TableName() string {
	return "scores"
}

// NewScore builds a score for the given gamer. A zero datePlayed
// defaults to today.
func NewScore(userID uint, value int, datePlayed time.Time) *Score {
	if datePlayed.IsZero() {
		datePlayed = time.Now()
	}
	return &Score{
		Score:      value,
		DatePlayed: datePlayed,
		UserID:     userID,
	}
}

// ScoreView is the API representation of a score.
type ScoreView struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"userID"`
	Score      int    `json:"score"`
	DatePlayed string `json:"dateplayed"`
}

func (s *Score) View() ScoreView {
	return ScoreView{
		ID:         s.ID,
		UserID:     s.UserID,
		Score:      s.Score,
		DatePlayed: s.DatePlayed.Format("2006-01-02"),
	}
}

func ScoreViews(scores []Score) []ScoreView {
	views := make([]ScoreView, 0, len(scores))
	for i := range scores {
		views = append(views, scores[i].View())
	}
	return views
}
