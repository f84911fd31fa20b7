package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserProfileModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string    `gorm:"type:varchar(100);not null" json:"full_name"`
	Phone        string    `gorm:"type:varchar(30)" json:"phone"`
	Bio          string    `gorm:"type:varchar(500)" json:"bio"`
	AvatarURL    string    `gorm:"type:varchar(500)" json:"avatar_url"`
	Role         string    `gorm:"type:varchar(20);default:'user';index" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (UserProfileModel) TableName() string {
	return "user_profiles"
}

func (m *UserProfileModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
