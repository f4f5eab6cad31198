package services

import (
	"errors"

	"snakescores/models"

	"gorm.io/gorm"
)

// AdminService mirrors GamerService for the admin_users table. Admin
// accounts have no scores, level, or date of birth.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	UID      string `json:"uid" binding:"required"`
	Password string `json:"password"`
}

type UpdateAdminRequest struct {
	Name     string `json:"name"`
	UID      string `json:"uid"`
	Password string `json:"password"`
}

func NewAdminFromRequest(req *CreateAdminRequest) (*models.AdminUser, error) {
	password := req.Password
	if password == "" {
		password = models.DefaultPassword
	}
	return models.NewAdminUser(req.Name, req.UID, password)
}

func (s *AdminService) Create(admin *models.AdminUser) error {
	if err := s.db.Create(admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *AdminService) Get(id uint) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := s.db.First(&admin, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdminService) GetByUID(uid string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := s.db.Where("uid = ?", uid).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdminService) List() ([]models.AdminUser, error) {
	var admins []models.AdminUser
	err := s.db.Order("id").Find(&admins).Error
	return admins, err
}

// Update applies name/uid/password only when supplied non-empty.
func (s *AdminService) Update(id uint, req *UpdateAdminRequest) (*models.AdminUser, error) {
	admin, err := s.Get(id)
	if err != nil || admin == nil {
		return nil, err
	}

	if req.Name != "" {
		admin.Name = req.Name
	}
	if req.UID != "" {
		admin.UID = req.UID
	}
	if req.Password != "" {
		if err := admin.SetPassword(req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.db.Save(admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return admin, nil
}

// Delete removes the admin for real, freeing the handle for reuse.
func (s *AdminService) Delete(id uint) error {
	return s.db.Unscoped().Delete(&models.AdminUser{}, id).Error
}

// CheckPassword verifies plain against the admin's stored digest. A nil
// admin fails verification instead of faulting.
func (s *AdminService) CheckPassword(admin *models.AdminUser, plain string) bool {
	if admin == nil {
		return false
	}
	return admin.CheckPassword(plain)
}
