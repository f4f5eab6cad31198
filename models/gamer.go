package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Level is a gamer's difficulty tier.
type Level int

const (
	LevelBeginner Level = iota
	LevelEasy
	LevelMedium
	LevelHard
	LevelMaster
	LevelGod
)

// Defaults applied when a create request omits the fields.
const (
	DefaultLevel    = LevelEasy
	DefaultPassword = "123qwerty"
)

func (l Level) Valid() bool {
	return l >= LevelBeginner && l <= LevelGod
}

func (l Level) String() string {
	switch l {
	case LevelBeginner:
		return "Beginner"
	case LevelEasy:
		return "Easy"
	case LevelMedium:
		return "Medium"
	case LevelHard:
		return "Hard"
	case LevelMaster:
		return "Master"
	case LevelGod:
		return "God"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

type Gamer struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"not null"`
	UID          string         `json:"uid" gorm:"uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"column:password;not null"`
	DOB          time.Time      `json:"dob" gorm:"column:dob;type:date"`
	Level        Level          `json:"level" gorm:"not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Scores []Score `json:"scores,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Gamer) TableName() string {
	return "gamers"
}

// NewGamer builds a gamer with a hashed password. A zero dob defaults to
// today. The level must be one of the six defined tiers.
func NewGamer(name, uid string, level Level, password string, dob time.Time) (*Gamer, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("invalid level %d", int(level))
	}
	if dob.IsZero() {
		dob = time.Now()
	}
	g := &Gamer{
		Name:  name,
		UID:   uid,
		DOB:   dob,
		Level: level,
	}
	if err := g.SetPassword(password); err != nil {
		return nil, err
	}
	return g, nil
}

// SetPassword stores the bcrypt digest of plain.
func (g *Gamer) SetPassword(plain string) error {
	hash, err := HashPassword(plain)
	if err != nil {
		return err
	}
	g.PasswordHash = hash
	return nil
}

// CheckPassword reports whether plain matches the stored digest.
func (g *Gamer) CheckPassword(plain string) bool {
	return CheckPasswordHash(plain, g.PasswordHash)
}

// Age in whole years as of today, one less if the birthday has not yet
// occurred this year.
func (g *Gamer) Age() int {
	return ageAt(g.DOB, time.Now())
}

func ageAt(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}

// GamerView is the API representation of a gamer. The password digest is
// deliberately absent in full.
type GamerView struct {
	ID     uint        `json:"id"`
	Name   string      `json:"name"`
	UID    string      `json:"uid"`
	DOB    string      `json:"dob"`
	Age    int         `json:"age"`
	Level  Level       `json:"level"`
	Scores []ScoreView `json:"scores"`
}

func (g *Gamer) View() GamerView {
	return GamerView{
		ID:     g.ID,
		Name:   g.Name,
		UID:    g.UID,
		DOB:    g.DOB.Format("2006-01-02"),
		Age:    g.Age(),
		Level:  g.Level,
		Scores: ScoreViews(g.Scores),
	}
}
