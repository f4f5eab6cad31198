package models

import (
	"time"

	"gorm.io/gorm"
)

// AdminUser is a privileged operator account. It has no gameplay data.
type AdminUser struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"not null"`
	UID          string         `json:"uid" gorm:"uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"column:password;not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

func NewAdminUser(name, uid, password string) (*AdminUser, error) {
	a := &AdminUser{
		Name: name,
		UID:  uid,
	}
	if err := a.SetPassword(password); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *AdminUser) SetPassword(plain string) error {
	hash, err := HashPassword(plain)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	return nil
}

func (a *AdminUser) CheckPassword(plain string) bool {
	return CheckPasswordHash(plain, a.PasswordHash)
}

// AdminUserView is the API representation of an admin account.
type AdminUserView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	UID  string `json:"uid"`
}

func (a *AdminUser) View() AdminUserView {
	return AdminUserView{
		ID:   a.ID,
		Name: a.Name,
		UID:  a.UID,
	}
}
