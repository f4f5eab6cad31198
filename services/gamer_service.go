package services

import (
	"errors"
	"time"

	"snakescores/models"

	"gorm.io/gorm"
)

type GamerService struct {
	db *gorm.DB
}

func NewGamerService(db *gorm.DB) *GamerService {
	return &GamerService{db: db}
}

type CreateGamerRequest struct {
	Name     string        `json:"name" binding:"required"`
	UID      string        `json:"uid" binding:"required"`
	Level    *models.Level `json:"level"`
	Password string        `json:"password"`
	DOB      string        `json:"dob"` // YYYY-MM-DD
}

type UpdateGamerRequest struct {
	Name     string        `json:"name"`
	UID      string        `json:"uid"`
	Level    *models.Level `json:"level"`
	Password string        `json:"password"`
}

// NewGamerFromRequest applies the create defaults (level Easy, password
// "123qwerty", dob today) and builds the entity.
func NewGamerFromRequest(req *CreateGamerRequest) (*models.Gamer, error) {
	level := models.DefaultLevel
	if req.Level != nil {
		level = *req.Level
	}
	password := req.Password
	if password == "" {
		password = models.DefaultPassword
	}
	var dob time.Time
	if req.DOB != "" {
		parsed, err := time.Parse("2006-01-02", req.DOB)
		if err != nil {
			return nil, err
		}
		dob = parsed
	}
	return models.NewGamer(req.Name, req.UID, level, password, dob)
}

// Create persists the gamer together with any scores already attached to
// its collection, in one transaction. A duplicate login handle rolls the
// whole write back and returns ErrDuplicate.
func (s *GamerService) Create(gamer *models.Gamer) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(gamer).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Get returns the gamer with ordered scores preloaded, or nil when absent.
func (s *GamerService) Get(id uint) (*models.Gamer, error) {
	var gamer models.Gamer
	err := s.db.Preload("Scores", func(db *gorm.DB) *gorm.DB {
		return db.Order("score DESC").Order("dateplayed ASC")
	}).First(&gamer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gamer, nil
}

// GetByUID looks a gamer up by login handle, or nil when absent.
func (s *GamerService) GetByUID(uid string) (*models.Gamer, error) {
	var gamer models.Gamer
	err := s.db.Preload("Scores", func(db *gorm.DB) *gorm.DB {
		return db.Order("score DESC").Order("dateplayed ASC")
	}).Where("uid = ?", uid).First(&gamer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gamer, nil
}

// List returns all gamers with their ordered scores.
func (s *GamerService) List() ([]models.Gamer, error) {
	var gamers []models.Gamer
	err := s.db.Preload("Scores", func(db *gorm.DB) *gorm.DB {
		return db.Order("score DESC").Order("dateplayed ASC")
	}).Order("id").Find(&gamers).Error
	return gamers, err
}

// Update applies name/uid/password only when supplied non-empty. The
// level has no such guard: whenever the field is present it is written
// as-is.
func (s *GamerService) Update(id uint, req *UpdateGamerRequest) (*models.Gamer, error) {
	gamer, err := s.Get(id)
	if err != nil || gamer == nil {
		return nil, err
	}

	if req.Name != "" {
		gamer.Name = req.Name
	}
	if req.UID != "" {
		gamer.UID = req.UID
	}
	if req.Password != "" {
		if err := gamer.SetPassword(req.Password); err != nil {
			return nil, err
		}
	}
	if req.Level != nil {
		if !req.Level.Valid() {
			return nil, errors.New("level must be between 0 and 5")
		}
		gamer.Level = *req.Level
	}

	if err := s.db.Save(gamer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return gamer, nil
}

// Delete removes the gamer and all of its scores. The cascade is executed
// explicitly inside the transaction, so the post-condition does not
// depend on the engine's foreign-key pragma. Rows are removed for real,
// not soft-deleted: the login handle frees up for reuse.
func (s *GamerService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", id).Delete(&models.Score{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Gamer{}, id).Error
	})
}

// CheckPassword verifies plain against the gamer's stored digest. A nil
// gamer fails verification instead of faulting.
func (s *GamerService) CheckPassword(gamer *models.Gamer, plain string) bool {
	if gamer == nil {
		return false
	}
	return gamer.CheckPassword(plain)
}
